package demo

// Category groups events by how their relation moved the story.
type Category string

const (
	CategoryPositive Category = "positive"
	CategoryNegative Category = "negative"
	CategoryNeutral  Category = "neutral"
)

// Valid reports whether c is a known category.
func (c Category) Valid() bool {
	return c == CategoryPositive || c == CategoryNegative || c == CategoryNeutral
}

var relationCategories = map[string]Category{
	"技术演进": CategoryPositive,
	"生态扩展": CategoryPositive,
	"政策背书": CategoryPositive,
	"里程碑":  CategoryPositive,
	"成果落地": CategoryPositive,
	"外部压力": CategoryNegative,
	"风险事件": CategoryNegative,
	"政治阻力": CategoryNegative,
}

// Event is one entry of the demo news timeline.
type Event struct {
	Date     string   `json:"date"`
	Title    string   `json:"title"`
	Content  string   `json:"content"`
	Entities []string `json:"entities"`
	Relation string   `json:"relation"`
}

// Category classifies the event by its relation. Unlisted relations are neutral.
func (e Event) Category() Category {
	if c, ok := relationCategories[e.Relation]; ok {
		return c
	}
	return CategoryNeutral
}

var events = []Event{
	{Date: "2024-05-07", Title: "A国央行宣布启动数字货币研究项目", Content: "A国财政部长表示将在6个月内完成技术验证...", Entities: []string{"A国央行", "数字货币"}, Relation: "事件起点"},
	{Date: "2024-05-11", Title: "国际清算银行警告数字货币风险", Content: "BIS报告指出A国方案可能影响跨境支付体系...", Entities: []string{"BIS"}, Relation: "外部压力"},
	{Date: "2024-05-16", Title: "A国公布数字法币技术白皮书", Content: "采用混合区块链架构，保留央行控制权...", Entities: []string{"区块链"}, Relation: "技术演进"},
	{Date: "2024-05-21", Title: "跨国银行联盟宣布兼容A国标准", Content: "JP摩根、汇丰等20家机构签署技术协议...", Entities: []string{"JP摩根", "汇丰"}, Relation: "生态扩展"},
	{Date: "2024-05-24", Title: "A国数字货币试点现技术漏洞", Content: "压力测试中发现双花攻击漏洞...", Entities: []string{}, Relation: "风险事件"},
	{Date: "2024-05-26", Title: "央行紧急升级智能合约模块", Content: "引入零知识证明强化隐私保护...", Entities: []string{"智能合约"}, Relation: "技术迭代"},
	{Date: "2024-05-28", Title: "国际货币基金组织表态支持", Content: "IMF认为有助于提升金融监管效率...", Entities: []string{"IMF"}, Relation: "政策背书"},
	{Date: "2024-05-31", Title: "反对党质疑项目透明度", Content: "国会听证会要求公开技术审计报告...", Entities: []string{"国会"}, Relation: "政治阻力"},
	{Date: "2024-06-02", Title: "央行数字法币首次跨境结算测试成功", Content: "与C国完成1亿美元实时转账...", Entities: []string{"C国"}, Relation: "里程碑"},
	{Date: "2024-06-05", Title: "A国宣布正式发行数字法币", Content: "第一阶段覆盖大额机构交易...", Entities: []string{}, Relation: "成果落地"},
}

// Events returns the timeline in date order.
func Events() []Event {
	out := make([]Event, len(events))
	copy(out, events)
	return out
}

// EventsByCategory returns the events of the given category, keeping timeline order.
func EventsByCategory(c Category) []Event {
	out := []Event{}
	for _, e := range events {
		if e.Category() == c {
			out = append(out, e)
		}
	}
	return out
}

// EventDetail is an event together with the market bar of the same day.
type EventDetail struct {
	Event

	Index       int          `json:"index"`
	Category    Category     `json:"category"`
	MarketData  *MarketPoint `json:"market_data"`
	PriceChange *float64     `json:"price_change"`
}

// EventByIndex returns the event at the zero-based index, correlated with the market series.
func EventByIndex(index int) (EventDetail, bool) {
	if index < 0 || index >= len(events) {
		return EventDetail{}, false
	}
	e := events[index]
	detail := EventDetail{Index: index, Event: e, Category: e.Category()}
	if points := MarketDataByDate(e.Date); len(points) > 0 {
		p := points[0]
		change := p.PriceChange().InexactFloat64()
		detail.MarketData = &p
		detail.PriceChange = &change
	}
	return detail, true
}

// Node is an entity of the network.
type Node struct {
	ID   string `json:"id"`
	Name string `json:"name"`
}

// Link joins two entities that appear in consecutive events.
type Link struct {
	Source   string `json:"source"`
	Target   string `json:"target"`
	Strength int    `json:"strength"`
	EventIDs [2]int `json:"event_ids"`
}

// Network is the entity graph of the timeline.
type Network struct {
	Nodes []Node `json:"nodes"`
	Links []Link `json:"links"`
}

// EntityNetwork builds the entity graph: every distinct entity is a node, and
// each pair of differently named entities from adjacent events is linked.
func EntityNetwork() Network {
	network := Network{Nodes: []Node{}, Links: []Link{}}
	seen := make(map[string]bool)
	for _, e := range events {
		for _, name := range e.Entities {
			if !seen[name] {
				seen[name] = true
				network.Nodes = append(network.Nodes, Node{ID: name, Name: name})
			}
		}
	}

	for i := 0; i+1 < len(events); i++ {
		for _, source := range events[i].Entities {
			for _, target := range events[i+1].Entities {
				if source == target {
					continue
				}
				network.Links = append(network.Links, Link{
					Source:   source,
					Target:   target,
					Strength: 1,
					EventIDs: [2]int{i, i + 1},
				})
			}
		}
	}
	return network
}
