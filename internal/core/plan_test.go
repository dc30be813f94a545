package core

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/edvin/saasadmin/internal/model"
)

func TestPlanService_List(t *testing.T) {
	svc := NewPlanService()

	plans := svc.List()
	require.Len(t, plans, 4)
	assert.Equal(t, model.PlanFree, plans[0].ID)
	assert.Equal(t, model.PlanBasic, plans[1].ID)
	assert.Equal(t, model.PlanPro, plans[2].ID)
	assert.Equal(t, model.PlanEnterprise, plans[3].ID)

	for _, p := range plans {
		assert.Len(t, p.Features, 6, "plan %s", p.ID)
	}
}

func TestPlanService_CatalogPrices(t *testing.T) {
	svc := NewPlanService()

	tests := []struct {
		id    string
		price int64
	}{
		{model.PlanFree, 0},
		{model.PlanBasic, 299},
		{model.PlanPro, 999},
		{model.PlanEnterprise, 2999},
	}
	for _, tt := range tests {
		p, err := svc.Get(tt.id)
		require.NoError(t, err)
		assert.Equal(t, tt.price, p.Price)
	}
}

func TestPlanService_ProIsRecommended(t *testing.T) {
	svc := NewPlanService()

	for _, p := range svc.List() {
		assert.Equal(t, p.ID == model.PlanPro, p.Recommended, "plan %s", p.ID)
	}
}

func TestPlanService_Get_Unknown(t *testing.T) {
	svc := NewPlanService()

	_, err := svc.Get("PLATINUM")
	assert.ErrorIs(t, err, ErrPlanNotFound)
}
