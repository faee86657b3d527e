package viewdata

import (
	"github.com/dalemusser/fieldhub/internal/app/system/statusstyle"
	"github.com/dalemusser/fieldhub/internal/domain/models"
)

// WorkOrderRow is a work order with its status classes resolved for templates.
type WorkOrderRow struct {
	models.WorkOrder
	Accent string
	Badge  string
}

// WorkOrderRows wraps orders for the shared work_order_table partial.
func WorkOrderRows(orders []models.WorkOrder) []WorkOrderRow {
	rows := make([]WorkOrderRow, 0, len(orders))
	for _, o := range orders {
		st := statusstyle.For(o.Status)
		rows = append(rows, WorkOrderRow{WorkOrder: o, Accent: st.Accent, Badge: st.Badge})
	}
	return rows
}
