package sqlite

import (
	"strings"

	repo "customer-support-agent/internal/order/repository"
)

// buildListFilter builds the WHERE clause + args for ListOrders.
// All non-empty fields are applied as AND conditions.
func (r *implRepository) buildListFilter(opt repo.ListOrdersOptions) (string, []any) {
	var conditions []string
	var args []any

	if opt.Status != "" {
		conditions = append(conditions, "LOWER(status) = LOWER(?)")
		args = append(args, opt.Status)
	}
	if opt.CustomerName != "" {
		conditions = append(conditions, "LOWER(customer_name) LIKE ?")
		args = append(args, "%"+strings.ToLower(opt.CustomerName)+"%")
	}
	if opt.CustomerEmail != "" {
		conditions = append(conditions, "LOWER(customer_email) LIKE ?")
		args = append(args, "%"+strings.ToLower(opt.CustomerEmail)+"%")
	}

	if len(conditions) == 0 {
		return "1=1", args
	}
	return strings.Join(conditions, " AND "), args
}

// buildPagination builds LIMIT/OFFSET. SQLite needs a LIMIT before OFFSET, so -1 stands for no limit.
func (r *implRepository) buildPagination(opt repo.ListOrdersOptions) (string, []any) {
	if opt.Limit <= 0 && opt.Offset <= 0 {
		return "", nil
	}
	limit := opt.Limit
	if limit <= 0 {
		limit = -1
	}
	offset := opt.Offset
	if offset < 0 {
		offset = 0
	}
	return "LIMIT ? OFFSET ?", []any{limit, offset}
}
