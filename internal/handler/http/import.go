package http

import (
	"net/http"
	"time"

	"github.com/workpulse-hr/paytime-backend-go/internal/handler/http/response"
	"github.com/workpulse-hr/paytime-backend-go/internal/pkg/timeutil"
	"github.com/workpulse-hr/paytime-backend-go/internal/service/punchimport"
)

type ImportHandler interface {
	ImportAttendances(w http.ResponseWriter, r *http.Request)
}

type importHandlerImpl struct {
	importService punchimport.ImportService
}

func NewImportHandler(svc punchimport.ImportService) ImportHandler {
	return &importHandlerImpl{importService: svc}
}

// ImportAttendances implements ImportHandler. Accepts a multipart upload with
// a "file" field (.xlsx, .xls or .csv) and an optional "default_date" field
// applied to rows without a resolvable date.
func (h *importHandlerImpl) ImportAttendances(w http.ResponseWriter, r *http.Request) {
	// Max 20MB
	if err := r.ParseMultipartForm(20 << 20); err != nil {
		response.BadRequest(w, "Failed to parse form data", nil)
		return
	}

	file, header, err := r.FormFile("file")
	if err != nil {
		response.BadRequest(w, "Field 'file' is required", nil)
		return
	}
	defer file.Close()

	defaultDate := timeutil.DateOnly(time.Now().UTC())
	if v := r.FormValue("default_date"); v != "" {
		parsed, ok := timeutil.ParseDate(v)
		if !ok {
			response.BadRequest(w, "default_date must use YYYY-MM-DD", nil)
			return
		}
		defaultDate = parsed
	}

	result, err := h.importService.ImportFile(r.Context(), header.Filename, file, defaultDate)
	if err != nil {
		if err == punchimport.ErrUnsupportedFileType {
			response.BadRequest(w, err.Error(), nil)
			return
		}
		response.HandleError(w, err)
		return
	}

	response.SuccessWithMessage(w, "Import completed", result)
}
