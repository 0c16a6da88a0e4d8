package handler

import (
	"net/http"
	"reflect"
	"strconv"

	"tienda/internal/apierror"
	"tienda/internal/service"

	"github.com/gin-gonic/gin"
	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
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
// Returns false and writes the error response if validation fails;
// the caller should return immediately without writing another response.
func bindAndValidate(c *gin.Context, req interface{}) bool {
	if err := c.ShouldBindJSON(req); err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("JSON invalido: "+err.Error()))
		return false
	}
	if err := validate.Struct(req); err != nil {
		fields := make(map[string]string)
		for _, fe := range err.(validator.ValidationErrors) {
			fields[fe.Field()] = fe.Tag()
		}
		c.JSON(http.StatusBadRequest, apierror.NewValidation(fields))
		return false
	}
	return true
}

// pathID parses the numeric :id segment (or another named param).
// Returns 0 and writes a 400 response when the value is not a positive integer.
func pathID(c *gin.Context, name string) (uint, bool) {
	v, err := strconv.ParseUint(c.Param(name), 10, 32)
	if err != nil {
		c.JSON(http.StatusBadRequest, apierror.New("ID invalido"))
		return 0, false
	}
	return uint(v), true
}

// writeServiceError maps domain errors: NotFound → 404 where notFoundAs404 is
// set (detail routes), the remaining request-level errors → 400. Anything the
// service did not classify is a storage failure: it is attached to the context
// for the error middleware, which answers 500 with a generic message.
func writeServiceError(c *gin.Context, err error, notFoundAs404 bool) {
	if service.IsNotFound(err) && notFoundAs404 {
		c.JSON(http.StatusNotFound, apierror.New(err.Error()))
		return
	}
	if service.IsRequestError(err) {
		c.JSON(http.StatusBadRequest, apierror.New(err.Error()))
		return
	}
	_ = c.Error(err)
	c.Abort()
}
