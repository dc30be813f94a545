// Package api provides the SaaS admin platform REST API.
//
//	@title			SaaS Admin Platform API
//	@version		1.0
//	@description	Subscription plan and purchase order management API
//	@BasePath		/api/v1
package api
