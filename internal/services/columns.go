package services

import "github.com/renato0307/kdash/internal/resources"

// Column keys of the services list
const (
	PackageKey    = "package-col"
	TypeKey       = "type-col"
	ClusterIPKey  = "cluster-ip-col"
	ExternalIPKey = "external-ip-col"
	PortKey       = "port-col"
	AgeKey        = "age-col"
)

const (
	headerColumnClass      = "sc-col-header"
	firstHeaderColumnClass = "first-col-header"
)

// ColumnActionsMode controls what a header click does
type ColumnActionsMode int

const (
	// ColumnActionsDisabled ignores header clicks (no sorting, no menu)
	ColumnActionsDisabled ColumnActionsMode = iota
	ColumnActionsClickable
	ColumnActionsHasDropdown
)

// ColumnSpec describes one column of a list. Widths are in pixels.
type ColumnSpec struct {
	Key         string            `json:"key"`
	Name        string            `json:"name"`
	FieldName   string            `json:"fieldName"`
	MinWidth    int               `json:"minWidth"`
	MaxWidth    int               `json:"maxWidth"`
	HeaderClass string            `json:"headerClassName"`
	ActionsMode ColumnActionsMode `json:"columnActionsMode"`
}

// Columns returns the column schema of the services list. Every call returns
// a new slice with the same six columns in the same order.
func Columns() []ColumnSpec {
	return []ColumnSpec{
		column(PackageKey, resources.PackageText, 140, headerColumnClass+" "+firstHeaderColumnClass),
		column(TypeKey, resources.TypeText, 110, headerColumnClass),
		column(ClusterIPKey, resources.ClusterIPText, 110, headerColumnClass),
		column(ExternalIPKey, resources.ExternalIPText, 110, headerColumnClass),
		column(PortKey, resources.PortText, 110, headerColumnClass),
		column(AgeKey, resources.AgeText, 80, headerColumnClass),
	}
}

func column(key, name string, width int, headerClass string) ColumnSpec {
	return ColumnSpec{
		Key:         key,
		Name:        name,
		FieldName:   key,
		MinWidth:    width,
		MaxWidth:    width,
		HeaderClass: headerClass,
		ActionsMode: ColumnActionsDisabled,
	}
}
