package handler

import (
	"errors"
	"net/http"
	"reflect"

	"comidapp/internal/apierror"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

var validate = validator.New()

func init() {
	// Register decimal.Decimal as a numeric type so that validator tags like
	// min=0, gt=0, required work without panicking ("Bad field type decimal.Decimal").
	validate.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if v, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := v.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})
}

// bindAndValidate binds JSON body and runs go-playground/validator tags.
// Returns false and writes the error response if validation fails —
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		var errores []string
		for _, fe := range err.(validator.ValidationErrors) {
			errores = append(errores, fe.Field()+": "+fe.Tag())
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(errores))
		return false
	}
	return true
}

// respondError maps the error taxonomy to status codes and writes the error
// envelope. Services translate driver errors, but gorm sentinels that slip
// through still map to sensible statuses instead of a blanket 500.
func respondError(c *gin.Context, err error) {
	var apiErr *apierror.Error
	if errors.As(err, &apiErr) {
		status := statusForKind(apiErr.Kind)
		if len(apiErr.Violaciones) > 0 {
			c.JSON(status, &apierror.Respuesta{Mensaje: apiErr.Mensaje, Errores: apiErr.Violaciones})
			return
		}
		c.JSON(status, apierror.New(apiErr.Mensaje))
		return
	}
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		c.JSON(http.StatusNotFound, apierror.New("recurso no encontrado"))
	case errors.Is(err, gorm.ErrDuplicatedKey):
		c.JSON(http.StatusConflict, apierror.New("el recurso ya existe"))
	default:
		c.JSON(http.StatusInternalServerError, apierror.New("error interno"))
	}
}

func statusForKind(k apierror.Kind) int {
	switch k {
	case apierror.KindValidation, apierror.KindInvalidState:
		return http.StatusBadRequest
	case apierror.KindUnauthorized:
		return http.StatusUnauthorized
	case apierror.KindForbidden:
		return http.StatusForbidden
	case apierror.KindNotFound:
		return http.StatusNotFound
	case apierror.KindConflict:
		return http.StatusConflict
	default:
		return http.StatusInternalServerError
	}
}

// ok writes the success envelope: { mensaje, <clave>: recurso }.
func ok(c *gin.Context, status int, mensaje, clave string, recurso interface{}) {
	c.JSON(status, gin.H{"mensaje": mensaje, clave: recurso})
}

func parseID(c *gin.Context) (uuid.UUID, bool) {
	id, err := uuid.Parse(c.Param("id"))
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return uuid.Nil, false
	}
	return id, true
}
