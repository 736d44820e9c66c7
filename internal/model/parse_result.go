package model

// ParseResultData 消息解析结果（跨服务传输用）
type ParseResultData struct {
	Items         []ParsedItem `json:"items"`
	CustomerName  string       `json:"customer_name,omitempty"`
	CustomerPhone string       `json:"customer_phone,omitempty"`
	Source        string       `json:"source,omitempty"`
	RawMessage    string       `json:"raw_message"`
}

// ParsedItem 单条解析出的品项
type ParsedItem struct {
	ProductName string `json:"product_name"`
	Quantity    int    `json:"quantity"`
}
