package request

import "chatorder/internal/app/domains/entity/etform"

// ToFormFields 请求字段转换为领域字段
func (r *CreateFormRequest) ToFormFields() []etform.Field {
	fields := make([]etform.Field, 0, len(r.Fields))
	for _, f := range r.Fields {
		fields = append(fields, etform.Field{
			Name:    f.Name,
			Label:   f.Label,
			Options: f.Options,
		})
	}
	return fields
}
