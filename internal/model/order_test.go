package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestOrderMatches_EmptyQuery(t *testing.T) {
	o := &Order{ID: "ORD-20230815-001"}
	assert.True(t, o.Matches(""))
}

func TestOrderMatches_ID(t *testing.T) {
	o := &Order{ID: "ORD-20230815-001", TenantName: "ABC科技有限公司", ProductName: "HR管理系统企业版"}
	assert.True(t, o.Matches("ord-20230815"))
	assert.True(t, o.Matches("815-001"))
	assert.False(t, o.Matches("ORD-20230816"))
}

func TestOrderMatches_TenantName(t *testing.T) {
	o := &Order{ID: "ORD-20230815-001", TenantName: "ABC科技有限公司"}
	assert.True(t, o.Matches("abc"))
	assert.True(t, o.Matches("科技"))
	assert.False(t, o.Matches("xyz"))
}

func TestOrderMatches_ProductName(t *testing.T) {
	o := &Order{ID: "ORD-20230815-001", ProductName: "SaaS系统 - 专业版"}
	assert.True(t, o.Matches("saas"))
	assert.True(t, o.Matches("专业版"))
}
