package core

import "github.com/edvin/saasadmin/internal/model"

// seedOrders returns the bootstrap order collection installed on first read
// of an empty store. Legacy product orders carry no plan id.
func seedOrders() []model.Order {
	return []model.Order{
		{
			ID:            "ORD-20230815-001",
			TenantName:    "ABC科技有限公司",
			ProductName:   "HR管理系统企业版",
			Amount:        25000,
			CreatedAt:     "2023-08-15 10:23:45",
			PaidAt:        "2023-08-15 10:25:12",
			Status:        model.OrderStatusPaid,
			PaymentMethod: model.PaymentMethodAlipay,
		},
		{
			ID:            "ORD-20230814-003",
			TenantName:    "XYZ贸易有限公司",
			ProductName:   "HR管理系统专业版",
			Amount:        12000,
			CreatedAt:     "2023-08-14 14:35:12",
			PaidAt:        "2023-08-14 14:36:45",
			Status:        model.OrderStatusPaid,
			PaymentMethod: model.PaymentMethodWechat,
		},
		{
			ID:          "ORD-20230814-002",
			TenantName:  "创新软件开发",
			ProductName: "HR管理系统基础版",
			Amount:      5000,
			CreatedAt:   "2023-08-14 11:45:33",
			Status:      model.OrderStatusPending,
		},
		{
			ID:            "ORD-20230813-001",
			TenantName:    "数据智能分析",
			ProductName:   "HR管理系统专业版",
			Amount:        12000,
			CreatedAt:     "2023-08-13 09:15:27",
			PaidAt:        "2023-08-13 09:20:05",
			Status:        model.OrderStatusPaid,
			PaymentMethod: model.PaymentMethodAlipay,
		},
		{
			ID:            "ORD-20230812-002",
			TenantName:    "云端解决方案",
			ProductName:   "财务管理系统",
			Amount:        15000,
			CreatedAt:     "2023-08-12 16:42:18",
			PaidAt:        "2023-08-12 16:45:22",
			Status:        model.OrderStatusPaid,
			PaymentMethod: model.PaymentMethodWechat,
		},
	}
}

// defaultSubscription returns the bootstrap subscription record.
func defaultSubscription() model.Subscription {
	return model.Subscription{
		PlanID:     model.PlanPro,
		ValidUntil: "2023-11-30",
		Status:     model.SubscriptionActive,
	}
}
