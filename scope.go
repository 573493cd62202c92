package natorder

import (
	"reflect"
	"sort"

	"github.com/iancoleman/strcase"
	"github.com/soranoba/natorder/core"
	"gorm.io/gorm"
)

// NaturalOrder is a builder that build a GORM scope that sorts the found records in natural order of a column.
// The records are sorted after the query, so it should not be combined with Limit or Offset
// unless the records of the page are meant to be sorted.
type NaturalOrder struct {
	Column string     `json:"column" query:"column"`
	Order  core.Order `json:"order"  query:"order"`
}

// NewNaturalOrder returns a NaturalOrder that sorts by the column in ascending order.
// The column is a field name of the model, or the snake case of it.
func NewNaturalOrder(column string) *NaturalOrder {
	return &NaturalOrder{
		Column: column,
		Order:  core.ASC,
	}
}

// Validate returns an error when the values of NaturalOrder is invalid.
func (order *NaturalOrder) Validate() error {
	if order.Column == "" {
		return &ValidationError{Field: "Column", Message: "must not be empty"}
	}
	if !order.Order.Validate() {
		return &ValidationError{Field: "Order", Message: "is invalid"}
	}
	return nil
}

// Scope returns a GORM scope.
func (order *NaturalOrder) Scope() func(db *gorm.DB) *gorm.DB {
	return func(db *gorm.DB) *gorm.DB {
		registerNaturalOrderCallbacks(db)
		return db.InstanceSet("natorder:order", order)
	}
}

// RegisterCallbacks registers the callbacks used by NaturalOrder.
// Scope registers them too, so calling it is only needed to register before the first query.
func RegisterCallbacks(db *gorm.DB) {
	registerNaturalOrderCallbacks(db)
}

func naturalOrderHandleAfterQuery(db *gorm.DB) {
	value, ok := db.InstanceGet("natorder:order")
	if !ok {
		return
	}
	order, ok := value.(*NaturalOrder)
	if !ok {
		return
	}

	if db.Error != nil {
		return
	}
	if err := order.Validate(); err != nil {
		db.AddError(err)
		return
	}

	results := db.Statement.ReflectValue
	if !(results.Kind() == reflect.Array || results.Kind() == reflect.Slice) {
		return
	}

	ty := results.Type().Elem()
	for ty.Kind() == reflect.Ptr {
		ty = ty.Elem()
	}
	if ty.Kind() != reflect.Struct {
		db.AddError(&ValidationError{Field: "Column", Message: "requires a struct model"})
		return
	}

	field, ok := lookupField(ty, order.Column)
	if !ok {
		db.AddError(&ValidationError{Field: "Column", Message: "is not a field of " + ty.Name()})
		return
	}
	if !(field.Type.Kind() == reflect.String ||
		(field.Type.Kind() == reflect.Ptr && field.Type.Elem().Kind() == reflect.String)) {
		db.AddError(&ValidationError{Field: "Column", Message: "must be a string or a pointer of string"})
		return
	}

	length := results.Len()
	values := make([]string, length)
	for i := 0; i < length; i++ {
		values[i] = fieldString(reflect.Indirect(results.Index(i)).FieldByIndex(field.Index))
	}

	compare := core.Comparator(order.Order)
	sort.Stable(&reflectSorter{
		values:  values,
		swapper: reflectSwapper(results),
		compare: compare,
	})

	db.Logger.Info(db.Statement.Context, "natorder: sorted %d records by %s %s", length, field.Name, order.Order)
}

func lookupField(ty reflect.Type, column string) (reflect.StructField, bool) {
	if field, ok := ty.FieldByName(column); ok {
		return field, true
	}
	return ty.FieldByName(strcase.ToCamel(column))
}

// fieldString returns the value of a string field. A nil pointer is the null sentinel.
func fieldString(value reflect.Value) string {
	if value.Kind() == reflect.Ptr {
		if value.IsNil() {
			return core.NullSentinel
		}
		value = value.Elem()
	}
	return value.String()
}

func reflectSwapper(results reflect.Value) func(i, j int) {
	if results.Kind() == reflect.Slice {
		return reflect.Swapper(results.Interface())
	}
	return func(i, j int) {
		a, b := results.Index(i), results.Index(j)
		tmp := reflect.New(a.Type()).Elem()
		tmp.Set(a)
		a.Set(b)
		b.Set(tmp)
	}
}

// reflectSorter sorts the records and the extracted column values together.
type reflectSorter struct {
	values  []string
	swapper func(i, j int)
	compare func(a, b string) int
}

func (s *reflectSorter) Len() int {
	return len(s.values)
}

func (s *reflectSorter) Less(i, j int) bool {
	return s.compare(s.values[i], s.values[j]) < 0
}

func (s *reflectSorter) Swap(i, j int) {
	s.values[i], s.values[j] = s.values[j], s.values[i]
	s.swapper(i, j)
}

func registerNaturalOrderCallbacks(db *gorm.DB) {
	q := db.Callback().Query()
	q.After("gorm:query").Replace("natorder:after_query", naturalOrderHandleAfterQuery)
}
