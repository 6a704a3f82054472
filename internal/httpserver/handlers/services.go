package handlers

import (
	"net/http"
	"time"

	"github.com/renato0307/kdash/internal/logging"
	"github.com/renato0307/kdash/internal/services"
)

type servicesResponse struct {
	Heading string                `json:"heading"`
	Columns []services.ColumnSpec `json:"columns"`
	Rows    []map[string]any      `json:"rows"`
}

type durationCell struct {
	StartDate time.Time `json:"startDate"`
	EndDate   time.Time `json:"endDate"`
	Text      string    `json:"text"`
}

// Services lists the services of ?namespace=, or of the default namespace.
// An explicit empty value (?namespace=) means all namespaces.
func Services(d Deps) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		namespace := d.Namespace
		if values, ok := r.URL.Query()["namespace"]; ok {
			namespace = values[0]
		}

		list, err := d.Fetcher.ListServices(r.Context(), namespace)
		if err != nil {
			logging.Error("failed to list services", "namespace", namespace, "error", err)
			writeError(w, http.StatusBadGateway, err)
			return
		}

		model := services.NewServicesList(list, nil)
		renderer := services.NewCellRenderer(d.now)

		rows := make([]map[string]any, len(model.Rows))
		for i := range model.Rows {
			rows[i] = rowMap(renderer, &model.Rows[i], model.Columns)
		}

		writeJSON(w, http.StatusOK, servicesResponse{
			Heading: model.Heading,
			Columns: model.Columns,
			Rows:    rows,
		})
	}
}

// rowMap renders every cell of row keyed by column key, plus the row UID and
// the source service
func rowMap(renderer *services.CellRenderer, row *services.ServiceRow, columns []services.ColumnSpec) map[string]any {
	m := make(map[string]any, len(columns)+2)
	for i := range columns {
		directive := renderer.Render(row, &columns[i])
		switch directive.Kind {
		case services.RenderDuration:
			m[columns[i].Key] = durationCell{
				StartDate: directive.StartDate,
				EndDate:   directive.EndDate,
				Text:      directive.String(),
			}
		case services.RenderText:
			m[columns[i].Key] = directive.Text
		}
	}
	m["uid"] = row.UID
	m["service"] = row.Service
	return m
}
