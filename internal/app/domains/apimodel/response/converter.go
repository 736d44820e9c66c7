package response

import (
	"chatorder/internal/app/domains/entity/etform"
	"chatorder/internal/app/domains/entity/etorder"
	"chatorder/internal/app/domains/entity/etvendor"
	"chatorder/internal/nlp"
)

const timeLayout = "2006-01-02 15:04:05"

// FromVendor 卖家实体转响应
func FromVendor(v *etvendor.Vendor) *VendorResponse {
	return &VendorResponse{
		ID:        v.ID,
		Name:      v.Name,
		Mode:      v.Mode,
		CreatedAt: v.CreatedAt.Format(timeLayout),
	}
}

// FromForm 表单实体转响应
func FromForm(f *etform.Form) *FormResponse {
	fields := make([]FormFieldResponse, 0, len(f.Fields))
	for _, field := range f.Fields {
		fields = append(fields, FormFieldResponse{
			Name:    field.Name,
			Label:   field.Label,
			Options: field.Options,
		})
	}

	return &FormResponse{
		ID:            f.ID,
		VendorID:      f.VendorID,
		Title:         f.Title,
		Fields:        fields,
		Deadline:      f.Deadline,
		OrderDeadline: f.OrderDeadline,
		CreatedAt:     f.CreatedAt.Format(timeLayout),
	}
}

// FromOrder 订单实体转响应
func FromOrder(o *etorder.Order) *OrderResponse {
	items := make([]OrderItemResponse, 0, len(o.Items))
	for _, item := range o.Items {
		items = append(items, OrderItemResponse{
			ProductName: item.ProductName,
			Quantity:    item.Quantity,
		})
	}

	return &OrderResponse{
		ID:            o.ID,
		VendorID:      o.VendorID,
		FormID:        o.FormID,
		RawMessage:    o.RawMessage,
		Source:        o.Source,
		Status:        string(o.Status),
		Items:         items,
		CustomerName:  o.CustomerName,
		CustomerPhone: o.CustomerPhone,
		ErrorMessage:  o.ErrorMessage,
		CreatedAt:     o.CreatedAt.Format(timeLayout),
		UpdatedAt:     o.UpdatedAt.Format(timeLayout),
	}
}

// FromOrderList 订单列表转响应
func FromOrderList(orders []*etorder.Order, total int64, page, limit int) *OrderListResponse {
	list := make([]OrderResponse, 0, len(orders))
	for _, o := range orders {
		list = append(list, *FromOrder(o))
	}
	return &OrderListResponse{
		Orders: list,
		Total:  total,
		Page:   page,
		Limit:  limit,
	}
}

// FromPostAnalysis 贴文分析结果转响应
// info 为 nil 时只返回分类结果
func FromPostAnalysis(analysis *nlp.PostAnalysis, info *nlp.PostFormInfo) *PostAnalysisResponse {
	resp := &PostAnalysisResponse{
		Type:       string(analysis.Type),
		Confidence: analysis.Confidence,
		Keywords:   analysis.Keywords,
	}

	if info != nil {
		products := make([]PostProductResponse, 0, len(info.Products))
		for _, p := range info.Products {
			products = append(products, PostProductResponse{
				Name:  p.Name,
				Price: p.Price,
				Unit:  p.Unit,
			})
		}
		resp.Suggestion = &FormSuggestion{
			Deadline:      info.Deadline,
			OrderDeadline: info.OrderDeadline,
			Products:      products,
			Description:   info.Description,
		}
	}

	return resp
}
