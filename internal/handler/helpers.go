package handler

import (
	"net/http"
	"reflect"
	"strings"

	"github.com/eoPedroAurelio/sistema-gestao-funcionarios/internal/apperror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var validate = validator.New()

func init() {
	// decimal.Decimal fields validate through their float value so numeric
	// tags (gt, gte) work on money amounts.
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	// Report field names as their json tag so messages match the wire shape.
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
}

// bindAndValidate decodes the JSON body into req and runs struct validation.
// On failure it writes the 400 response and returns false.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apperror.Response{
			Error:   "Formato de dados inválido",
			Details: err.Error(),
		})
		return false
	}
	if err := validate.Struct(req); err != nil {
		var missing, invalid []string
		for _, fe := range err.(validator.ValidationErrors) {
			if fe.Tag() == "required" {
				missing = append(missing, fe.Field())
			} else {
				invalid = append(invalid, fe.Field())
			}
		}
		msg := "Campos inválidos: " + strings.Join(invalid, ", ")
		if len(missing) > 0 {
			msg = "Campos obrigatórios faltando: " + strings.Join(missing, ", ")
		}
		c.JSON(http.StatusBadRequest, apperror.Response{Error: msg})
		return false
	}
	return true
}

func respondError(c *gin.Context, err error) {
	c.JSON(apperror.Status(err), apperror.Payload(err))
}

// parseID reads the :id path parameter. Malformed UUIDs answer 400 before any
// service call.
func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apperror.Response{Error: "ID inválido"})
		return uuid.Nil, false
	}
	return id, true
}
