// Package di assembles the three gochat processes.
package di

import (
	"log/slog"

	"gochat/internal/config"
	"gochat/internal/eventbus"
	"gochat/internal/gateway/connection"
	gwhandler "gochat/internal/gateway/handler"
	msghandler "gochat/internal/message/handler"
	presencehandler "gochat/internal/presence/handler"
	presencesvc "gochat/internal/presence/service"
)

type MessageApp struct {
	Config   *config.Config
	Logger   *slog.Logger
	Bus      eventbus.Bus
	Handler  *msghandler.MessageHandler
	Consumer *msghandler.EventConsumer
}

type PresenceApp struct {
	Config   *config.Config
	Logger   *slog.Logger
	Bus      eventbus.Bus
	Handler  *presencehandler.PresenceHandler
	Consumer *presencehandler.MembershipConsumer
	Expiry   *presencesvc.ExpiryListener
}

type GatewayApp struct {
	Config   *config.Config
	Logger   *slog.Logger
	Bus      eventbus.Bus
	Registry *connection.Registry
	Bridge   *gwhandler.Bridge
	HTTP     *gwhandler.HTTPServer
}
