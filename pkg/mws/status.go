package mws

import (
	"context"
	"time"
)

// Service status values.
const (
	StatusGreen  = "GREEN"
	StatusGreenI = "GREEN_I"
	StatusYellow = "YELLOW"
	StatusRed    = "RED"
)

// StatusMessage is an operator note attached to a non-green status.
type StatusMessage struct {
	Locale string `xml:"Locale"`
	Text   string `xml:"Text"`
}

// ServiceStatus is the result of GetServiceStatus.
type ServiceStatus struct {
	Response
	Status    string          `xml:"Status"`
	Timestamp time.Time       `xml:"Timestamp"`
	MessageID string          `xml:"MessageId"`
	Messages  []StatusMessage `xml:"Messages>Message"`
}

// OK reports whether the section is operating normally.
func (s *ServiceStatus) OK() bool {
	return s.Status == StatusGreen || s.Status == StatusGreenI
}

// GetServiceStatus returns the operational status of a section. Each
// section has its own throttle group.
func (c *Client) GetServiceStatus(ctx context.Context, section Section) (*ServiceStatus, error) {
	if !section.HasStatus {
		return nil, invalidf("section %q does not report service status", section.Name)
	}
	r := newRequest(section, "GetServiceStatus", "GetServiceStatus:"+section.Name)
	return call[ServiceStatus](ctx, c, r)
}
