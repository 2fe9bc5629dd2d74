// Package gateway composes the transport-specific gateways into the
// single AuthGW implementation the usecase depends on.
package gateway

import (
	gatewayHTTP "github.com/kiranakart/auth-service/services/auth/gateway/http"
	gatewayNATS "github.com/kiranakart/auth-service/services/auth/gateway/nats"
)

// AuthGW bundles the authority HTTP client and the NATS event publisher
type AuthGW struct {
	*gatewayHTTP.AuthorityGateway
	*gatewayNATS.SessionEventGateway
}

// NewAuthGW creates the composed auth gateway
func NewAuthGW(authority *gatewayHTTP.AuthorityGateway, events *gatewayNATS.SessionEventGateway) *AuthGW {
	return &AuthGW{
		AuthorityGateway:    authority,
		SessionEventGateway: events,
	}
}
