package http

import (
	"net/http"

	pkgErrors "customer-support-agent/pkg/errors"
)

var errProfileNotFound = pkgErrors.NewHTTPError(http.StatusNotFound, "no recent activity for this user")
