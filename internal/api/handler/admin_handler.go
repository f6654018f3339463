package handler

import (
	"fmt"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/campushub/events-api/internal/api/metrics"
	"github.com/campushub/events-api/internal/core/ports"
	"github.com/campushub/events-api/internal/pkg/roster"
)

// AdminHandler handles roster imports.
type AdminHandler struct {
	rosterService ports.RosterService
}

func NewAdminHandler(rosterService ports.RosterService) *AdminHandler {
	return &AdminHandler{rosterService: rosterService}
}

type importResponse struct {
	Message  string `json:"message"`
	Imported int    `json:"imported"`
}

// ImportRoster handles POST /api/admin/students/import (multipart .xlsx, admin only).
//
// @Summary      Import a student roster from a spreadsheet
// @Tags         admin
// @Accept       mpfd
// @Produce      json
// @Param        file  formData  file  true  "Roster workbook (.xlsx)"
// @Success      200   {object}  importResponse
// @Failure      400   {object}  errorResponse
// @Router       /api/admin/students/import [post]
func (h *AdminHandler) ImportRoster(c echo.Context) error {
	fh, err := c.FormFile("file")
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "no file uploaded")
	}

	src, err := fh.Open()
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "cannot read uploaded file")
	}
	defer src.Close()

	decoded, err := roster.Decode(src)
	if err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, fmt.Sprintf("malformed roster: %v", err))
	}

	rows := make([]ports.RosterRow, 0, len(decoded))
	for _, r := range decoded {
		rows = append(rows, ports.RosterRow{Name: r.Name, NIC: r.NIC, StudentID: r.StudentID})
	}

	count, err := h.rosterService.Import(c.Request().Context(), rows)
	metrics.RosterRowsImportedTotal.Add(float64(count))
	if err != nil {
		return err
	}

	return c.JSON(http.StatusOK, importResponse{
		Message:  fmt.Sprintf("imported %d students", count),
		Imported: count,
	})
}
