package httpserver

import (
	"context"

	"github.com/gin-gonic/gin"

	analyticsHTTP "customer-support-agent/internal/analytics/delivery/http"
	chatHTTP "customer-support-agent/internal/chat/delivery/http"
	orderHTTP "customer-support-agent/internal/order/delivery/http"
	profileHTTP "customer-support-agent/internal/profile/delivery/http"
)

// setupChatDomain registers /api/chat/*, /api/sessions/active and /api/escalation/confirm.
func (srv *HTTPServer) setupChatDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := chatHTTP.New(srv.l, srv.chatUC)
	chatHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Chat domain registered")
	return nil
}

// setupOrderDomain registers /api/orders.
func (srv *HTTPServer) setupOrderDomain(ctx context.Context, api *gin.RouterGroup) error {
	h := orderHTTP.New(srv.l, srv.orderUC)
	orderHTTP.RegisterRoutes(api, h)

	srv.l.Infof(ctx, "Order domain registered")
	return nil
}

// setupInsightDomain registers /api/analytics and /api/users/:user_id/profile when their stores are set.
func (srv *HTTPServer) setupInsightDomain(ctx context.Context, api *gin.RouterGroup) error {
	if srv.analytics != nil {
		analyticsHTTP.RegisterRoutes(api, analyticsHTTP.New(srv.l, srv.analytics))
		srv.l.Infof(ctx, "Analytics domain registered")
	}
	if srv.profiles != nil {
		profileHTTP.RegisterRoutes(api, profileHTTP.New(srv.l, srv.profiles))
		srv.l.Infof(ctx, "Profile domain registered")
	}
	return nil
}
