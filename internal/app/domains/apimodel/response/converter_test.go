package response

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"chatorder/internal/app/domains/entity/etorder"
	"chatorder/internal/app/domains/entity/etvendor"
	"chatorder/internal/nlp"
)

func TestFromOrder(t *testing.T) {
	created := time.Date(2025, 3, 15, 10, 30, 0, 0, time.Local)
	order := &etorder.Order{
		ID:         "ord-123",
		VendorID:   7,
		FormID:     42,
		RawMessage: "牛奶+2",
		Status:     etorder.OrderStatusParsed,
		Items: []etorder.Item{
			{ProductName: "牛奶", Quantity: 2},
		},
		CustomerName:  "小美",
		CustomerPhone: "0912345678",
		CreatedAt:     created,
		UpdatedAt:     created,
	}

	resp := FromOrder(order)

	assert.Equal(t, "ord-123", resp.ID)
	assert.Equal(t, "PARSED", resp.Status)
	require.Len(t, resp.Items, 1)
	assert.Equal(t, "牛奶", resp.Items[0].ProductName)
	assert.Equal(t, 2, resp.Items[0].Quantity)
	assert.Equal(t, "2025-03-15 10:30:00", resp.CreatedAt)
}

func TestFromOrderList(t *testing.T) {
	orders := []*etorder.Order{
		{ID: "a", Status: etorder.OrderStatusReceived},
		{ID: "b", Status: etorder.OrderStatusFailed, ErrorMessage: "message not recognized"},
	}

	resp := FromOrderList(orders, 12, 2, 2)

	require.Len(t, resp.Orders, 2)
	assert.Equal(t, int64(12), resp.Total)
	assert.Equal(t, 2, resp.Page)
	assert.Equal(t, "message not recognized", resp.Orders[1].ErrorMessage)
}

func TestFromVendor(t *testing.T) {
	v, err := etvendor.NewVendor(3, "阿明水餃", etvendor.ModeGroupBuy)
	require.NoError(t, err)

	resp := FromVendor(v)

	assert.Equal(t, int64(3), resp.ID)
	assert.Equal(t, "groupbuy", resp.Mode)
}

func TestFromPostAnalysis(t *testing.T) {
	analysis := &nlp.PostAnalysis{
		Type:       nlp.PostTypeGroupBuy,
		Confidence: 0.8,
		Keywords:   []string{"開團", "截止"},
	}

	t.Run("分類加表單建議", func(t *testing.T) {
		info := &nlp.PostFormInfo{
			Deadline:      "週五截止",
			OrderDeadline: "2025-03-21 18:00",
			Products: []nlp.PostProduct{
				{Name: "高麗菜水餃", Price: 240, Unit: "2包"},
			},
			Description: "本週開團",
		}

		resp := FromPostAnalysis(analysis, info)

		assert.Equal(t, "groupbuy", resp.Type)
		require.NotNil(t, resp.Suggestion)
		assert.Equal(t, "2025-03-21 18:00", resp.Suggestion.OrderDeadline)
		require.Len(t, resp.Suggestion.Products, 1)
		assert.Equal(t, 240, resp.Suggestion.Products[0].Price)
	})

	t.Run("僅分類", func(t *testing.T) {
		resp := FromPostAnalysis(analysis, nil)
		assert.Nil(t, resp.Suggestion)
	})
}
