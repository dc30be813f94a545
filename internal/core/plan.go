package core

import (
	"errors"

	"github.com/edvin/saasadmin/internal/model"
)

// ErrPlanNotFound is returned when a plan id is not in the catalog.
var ErrPlanNotFound = errors.New("plan not found")

// PlanService serves the static plan catalog. The catalog is reference data
// loaded once at construction and never mutated.
type PlanService struct {
	plans []model.Plan
}

func NewPlanService() *PlanService {
	return &PlanService{plans: defaultPlans()}
}

// List returns all catalog plans in display order.
func (s *PlanService) List() []model.Plan {
	return s.plans
}

// Get returns the plan with the given id.
func (s *PlanService) Get(id string) (model.Plan, error) {
	for _, p := range s.plans {
		if p.ID == id {
			return p, nil
		}
	}
	return model.Plan{}, ErrPlanNotFound
}

func defaultPlans() []model.Plan {
	return []model.Plan{
		{
			ID:     model.PlanFree,
			Name:   "体验版",
			Price:  0,
			Period: "永久免费",
			Features: []model.PlanFeature{
				{Name: "最多5个用户", Included: true},
				{Name: "100条短信/月", Included: true},
				{Name: "10份简历解析", Included: true},
				{Name: "基础AI功能", Included: true},
				{Name: "高级报表", Included: false},
				{Name: "定制化开发", Included: false},
			},
		},
		{
			ID:     model.PlanBasic,
			Name:   "基础版",
			Price:  299,
			Period: "每月",
			Features: []model.PlanFeature{
				{Name: "最多10个用户", Included: true},
				{Name: "1,000条短信/月", Included: true},
				{Name: "50份简历解析", Included: true},
				{Name: "基础AI功能", Included: true},
				{Name: "基础报表", Included: true},
				{Name: "定制化开发", Included: false},
			},
		},
		{
			ID:          model.PlanPro,
			Name:        "专业版",
			Price:       999,
			Period:      "每月",
			Recommended: true,
			Features: []model.PlanFeature{
				{Name: "最多50个用户", Included: true},
				{Name: "5,000条短信/月", Included: true},
				{Name: "200份简历解析", Included: true},
				{Name: "完整AI功能", Included: true},
				{Name: "高级报表", Included: true},
				{Name: "定制化开发", Included: false},
			},
		},
		{
			ID:     model.PlanEnterprise,
			Name:   "企业版",
			Price:  2999,
			Period: "每月",
			Features: []model.PlanFeature{
				{Name: "无限用户", Included: true},
				{Name: "20,000条短信/月", Included: true},
				{Name: "1,000份简历解析", Included: true},
				{Name: "完整AI功能", Included: true},
				{Name: "高级报表", Included: true},
				{Name: "定制化开发", Included: true},
			},
		},
	}
}
