// Package dbusctl exposes hook control over the D-Bus session bus so desktop
// tooling can pause capture without signaling the daemon.
package dbusctl

import (
	"fmt"

	"github.com/dooshek/keyhook/internal/hook"
	"github.com/dooshek/keyhook/internal/logger"
	"github.com/godbus/dbus/v5"
	"github.com/godbus/dbus/v5/introspect"
)

const (
	dbusServiceName = "com.dooshek.keyhook"
	dbusObjectPath  = "/com/dooshek/keyhook/Hook"
	dbusInterface   = "com.dooshek.keyhook.Hook"
)

// Server implements the D-Bus control service for a running hook.
type Server struct {
	conn *dbus.Conn
	hook *hook.Hook
}

// NewServer creates a D-Bus server controlling the given hook.
func NewServer(h *hook.Hook) *Server {
	return &Server{hook: h}
}

// Start connects to the session bus, claims the service name and exports the
// control object.
func (s *Server) Start() error {
	var err error
	s.conn, err = dbus.ConnectSessionBus()
	if err != nil {
		return fmt.Errorf("failed to connect to session bus: %w", err)
	}

	reply, err := s.conn.RequestName(dbusServiceName, dbus.NameFlagDoNotQueue)
	if err != nil {
		s.conn.Close()
		return fmt.Errorf("failed to request name: %w", err)
	}
	if reply != dbus.RequestNameReplyPrimaryOwner {
		s.conn.Close()
		return fmt.Errorf("name already taken")
	}

	if err := s.conn.Export(s, dbusObjectPath, dbusInterface); err != nil {
		s.conn.Close()
		return fmt.Errorf("failed to export object: %w", err)
	}

	node := &introspect.Node{
		Name: dbusObjectPath,
		Interfaces: []introspect.Interface{{
			Name: dbusInterface,
			Methods: []introspect.Method{
				{Name: "Pause"},
				{Name: "Resume"},
				{
					Name: "GetStatus",
					Args: []introspect.Arg{
						{Name: "paused", Type: "b", Direction: "out"},
					},
				},
			},
		}},
	}
	if err := s.conn.Export(introspect.NewIntrospectable(node), dbusObjectPath,
		"org.freedesktop.DBus.Introspectable"); err != nil {
		s.conn.Close()
		return fmt.Errorf("failed to export introspection: %w", err)
	}

	logger.Infof("D-Bus control service started: %s", dbusServiceName)
	return nil
}

// Stop releases the bus connection.
func (s *Server) Stop() {
	if s.conn != nil {
		s.conn.Close()
	}
}

// Pause suspends event dispatch. Exported over D-Bus.
func (s *Server) Pause() *dbus.Error {
	s.hook.Pause()
	return nil
}

// Resume re-enables event dispatch. Exported over D-Bus.
func (s *Server) Resume() *dbus.Error {
	s.hook.Resume()
	return nil
}

// GetStatus reports whether the hook is paused. Exported over D-Bus.
func (s *Server) GetStatus() (bool, *dbus.Error) {
	return s.hook.IsPaused(), nil
}
