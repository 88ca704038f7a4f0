package server

import (
	stderrors "errors"
	"fmt"
	"path/filepath"

	"github.com/gofiber/fiber/v2"

	"github.com/arthur-debert/docgen/pkg/errors"
	"github.com/arthur-debert/docgen/pkg/render"
	"github.com/arthur-debert/docgen/pkg/style"
	"github.com/arthur-debert/docgen/pkg/templates"
	"github.com/arthur-debert/docgen/pkg/validate"
)

// stateResponse is the common answer of every endpoint that reads or changes
// the configuration: the snapshot plus the label it runs under.
type stateResponse struct {
	Active style.TemplateName  `json:"active"`
	Config style.Configuration `json:"config"`
}

type templatesResponse struct {
	Templates []style.TemplateName `json:"templates"`
	Active    style.TemplateName   `json:"active"`
}

// settingRequest is one edit: a key within the target category and its new
// value. Values arrive as whatever JSON type the client sent; the schema
// layer normalizes them.
type settingRequest struct {
	Key   string      `json:"key"`
	Value interface{} `json:"value"`
}

// renderRequest names the input, either a file path or inline text, and the
// output path whose extension picks the backend.
type renderRequest struct {
	InputPath  string `json:"input_path,omitempty"`
	Text       string `json:"text,omitempty"`
	OutputPath string `json:"output_path"`
}

type renderResponse struct {
	OutputPath string `json:"output_path"`
}

// errorBody is the uniform error answer. Violations appear only on
// validation failures.
type errorBody struct {
	Error      string               `json:"error"`
	Code       string               `json:"code"`
	Violations []validate.Violation `json:"violations,omitempty"`
}

func (s *Server) handleHealth(c *fiber.Ctx) error {
	return c.JSON(fiber.Map{"status": "ok"})
}

func (s *Server) handleTemplateList(c *fiber.Ctx) error {
	return c.JSON(templatesResponse{
		Templates: templates.Names(),
		Active:    s.store.ActiveTemplate(),
	})
}

func (s *Server) handleTemplateApply(c *fiber.Ctx) error {
	name := style.TemplateName(c.Params("name"))
	if err := s.store.LoadTemplate(name); err != nil {
		return writeError(c, err)
	}
	return s.writeState(c)
}

func (s *Server) handleConfigGet(c *fiber.Ctx) error {
	return s.writeState(c)
}

func (s *Server) handleDocumentPatch(c *fiber.Ctx) error {
	req, err := parseSettingRequest(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := s.store.SetDocumentSetting(req.Key, req.Value); err != nil {
		return writeError(c, err)
	}
	return s.writeState(c)
}

func (s *Server) handleElementPatch(c *fiber.Ctx) error {
	cat := style.Category(c.Params("category"))
	if !cat.IsElement() {
		return writeError(c, errors.Newf(errors.ErrNotFound, "no element category named %q", c.Params("category")).
			WithDetail("categories", style.ElementCategories()))
	}

	req, err := parseSettingRequest(c)
	if err != nil {
		return writeError(c, err)
	}
	if err := s.store.SetElementSetting(cat, req.Key, req.Value); err != nil {
		return writeError(c, err)
	}
	return s.writeState(c)
}

func (s *Server) handleRender(c *fiber.Ctx) error {
	var req renderRequest
	if err := c.BodyParser(&req); err != nil {
		return writeError(c, errors.Wrap(err, errors.ErrInvalidInput, "parsing render request"))
	}
	if req.OutputPath == "" {
		return writeError(c, errors.New(errors.ErrInvalidInput, "output_path is required"))
	}
	if (req.InputPath == "") == (req.Text == "") {
		return writeError(c, errors.New(errors.ErrInvalidInput, "provide exactly one of input_path or text"))
	}

	var err error
	if req.Text != "" {
		err = s.service.RenderText(c.Context(), req.Text, req.OutputPath)
	} else {
		err = s.service.RenderInput(c.Context(), req.InputPath, req.OutputPath)
	}

	ext := render.NormalizeExtension(filepath.Ext(req.OutputPath))
	if err != nil {
		observeRender(ext, string(errors.GetErrorCode(err)))
		return writeError(c, err)
	}
	observeRender(ext, "ok")
	return c.JSON(renderResponse{OutputPath: req.OutputPath})
}

func (s *Server) writeState(c *fiber.Ctx) error {
	cfg, active := s.store.State()
	return c.JSON(stateResponse{Active: active, Config: cfg})
}

func parseSettingRequest(c *fiber.Ctx) (settingRequest, error) {
	var req settingRequest
	if err := c.BodyParser(&req); err != nil {
		return req, errors.Wrap(err, errors.ErrInvalidInput, "parsing setting request")
	}
	if req.Key == "" {
		return req, errors.New(errors.ErrInvalidInput, "key is required")
	}
	return req, nil
}

// writeError maps a coded error onto its HTTP status and the uniform error
// body. Validation failures additionally carry their violations.
func writeError(c *fiber.Ctx, err error) error {
	body := errorBody{
		Error: errorMessage(err),
		Code:  string(errors.GetErrorCode(err)),
	}

	var verr *validate.ValidationError
	if stderrors.As(err, &verr) {
		body.Violations = verr.Violations
	}

	return c.Status(statusFor(errors.GetErrorCode(err))).JSON(body)
}

func statusFor(code errors.ErrorCode) int {
	switch code {
	case errors.ErrUnknownTemplate, errors.ErrNotFound:
		return fiber.StatusNotFound
	case errors.ErrInvalidValue, errors.ErrValidation:
		return fiber.StatusUnprocessableEntity
	case errors.ErrInvalidInput, errors.ErrInputRead:
		return fiber.StatusBadRequest
	case errors.ErrRenderTimeout:
		return fiber.StatusGatewayTimeout
	case errors.ErrRenderFailure, errors.ErrOutputWrite:
		return fiber.StatusBadGateway
	default:
		return fiber.StatusInternalServerError
	}
}

// errorMessage strips the bracketed code prefix from coded errors; the code
// travels in its own field.
func errorMessage(err error) string {
	var derr *errors.DocgenError
	if stderrors.As(err, &derr) {
		if derr.Wrapped != nil {
			return fmt.Sprintf("%s: %v", derr.Message, derr.Wrapped)
		}
		return derr.Message
	}
	return err.Error()
}
