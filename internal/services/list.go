package services

import (
	corev1 "k8s.io/api/core/v1"

	"github.com/renato0307/kdash/internal/resources"
)

// ItemInvokedFunc is called when a row is activated. event is whatever the
// host widget reports for the activation (a key press, an HTTP request, ...).
type ItemInvokedFunc func(item *ServiceRow, index int, event any)

// ServicesList is everything a list widget needs to show services
type ServicesList struct {
	Heading       string
	Rows          []ServiceRow
	Columns       []ColumnSpec
	OnItemInvoked ItemInvokedFunc
}

// NewServicesList builds the rows and columns for list. onItemInvoked may be nil.
func NewServicesList(list *corev1.ServiceList, onItemInvoked ItemInvokedFunc) *ServicesList {
	return &ServicesList{
		Heading:       resources.ServicesDetailsText,
		Rows:          BuildRows(list),
		Columns:       Columns(),
		OnItemInvoked: onItemInvoked,
	}
}

// Invoke forwards a row activation to OnItemInvoked, if set
func (l *ServicesList) Invoke(item *ServiceRow, index int, event any) {
	if l.OnItemInvoked != nil {
		l.OnItemInvoked(item, index, event)
	}
}

// Row returns the row at index, or nil when index is out of range
func (l *ServicesList) Row(index int) *ServiceRow {
	if index < 0 || index >= len(l.Rows) {
		return nil
	}
	return &l.Rows[index]
}
