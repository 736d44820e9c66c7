package nlp

// MergeOrderItems 合并同名品项，数量求和
// 输出顺序为各品名首次出现的顺序（稳定分组，不排序）；
// 对自身输出再执行一次是幂等的
func MergeOrderItems(items []OrderItem) []OrderItem {
	if len(items) == 0 {
		return nil
	}

	index := make(map[string]int, len(items))
	merged := make([]OrderItem, 0, len(items))
	for _, item := range items {
		if i, ok := index[item.ProductName]; ok {
			merged[i].Quantity += item.Quantity
			continue
		}
		index[item.ProductName] = len(merged)
		merged = append(merged, item)
	}
	return merged
}
