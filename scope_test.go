package natorder

import (
	"errors"
	"testing"

	"github.com/soranoba/natorder/core"
	"gorm.io/gorm"
)

type grain struct {
	ID          uint `gorm:"primarykey"`
	DisplayName string
	Label       *string
	Weight      int
}

func createGrains(t *testing.T, db *gorm.DB) {
	t.Helper()
	assertNoError(t, db.Migrator().DropTable(&grain{}))
	assertNoError(t, db.AutoMigrate(&grain{}))

	label := func(s string) *string { return &s }
	grains := []grain{
		{DisplayName: "554зерно29", Label: label("b2")},
		{DisplayName: "", Label: nil},
		{DisplayName: "бананы", Label: label("b10")},
		{DisplayName: "null", Label: label("b1")},
		{DisplayName: "554зерно28", Label: nil},
		{DisplayName: "553зерна29", Label: label("a")},
	}
	assertNoError(t, db.Create(&grains).Error)
}

func grainIDs(grains []grain) []uint {
	result := make([]uint, len(grains))
	for i, g := range grains {
		result[i] = g.ID
	}
	return result
}

func TestNaturalOrder_Scope(t *testing.T) {
	db := openDB()
	createGrains(t, db)

	var grains []grain
	assertNoError(t, db.Scopes(NewNaturalOrder("DisplayName").Scope()).Order("id ASC").Find(&grains).Error)
	assertEqual(t, grainIDs(grains), []uint{4, 2, 6, 5, 1, 3})

	grains = nil
	assertNoError(t, db.Scopes(NewNaturalOrder("display_name").Scope()).Order("id ASC").Find(&grains).Error)
	assertEqual(t, grainIDs(grains), []uint{4, 2, 6, 5, 1, 3})

	order := &NaturalOrder{Column: "DisplayName", Order: core.DESC}
	grains = nil
	assertNoError(t, db.Scopes(order.Scope()).Order("id ASC").Find(&grains).Error)
	assertEqual(t, grainIDs(grains), []uint{4, 3, 1, 5, 6, 2})
}

func TestNaturalOrder_NullableColumn(t *testing.T) {
	db := openDB()
	createGrains(t, db)

	// SQL NULL is sorted as the null sentinel, keeping the database order between them.
	var grains []*grain
	assertNoError(t, db.Scopes(NewNaturalOrder("label").Scope()).Order("id ASC").Find(&grains).Error)
	ids := make([]uint, len(grains))
	for i, g := range grains {
		ids[i] = g.ID
	}
	assertEqual(t, ids, []uint{2, 5, 6, 4, 1, 3})
}

func TestNaturalOrder_WithoutScope(t *testing.T) {
	db := openDB()
	createGrains(t, db)

	var grains []grain
	assertNoError(t, db.Order("id DESC").Find(&grains).Error)
	assertEqual(t, grainIDs(grains), []uint{6, 5, 4, 3, 2, 1})
}

func TestNaturalOrder_InvalidColumn(t *testing.T) {
	db := openDB()
	createGrains(t, db)

	var grains []grain
	err := db.Scopes(NewNaturalOrder("Unknown").Scope()).Find(&grains).Error
	assertEqual(t, errors.Is(err, ErrInvalidArgument), true)

	err = db.Scopes(NewNaturalOrder("Weight").Scope()).Find(&grains).Error
	assertEqual(t, errors.Is(err, ErrInvalidArgument), true)
}

func TestNaturalOrder_Validate(t *testing.T) {
	assertNoError(t, NewNaturalOrder("Name").Validate())
	assertError(t, NewNaturalOrder("").Validate())
	assertError(t, (&NaturalOrder{Column: "Name", Order: "random"}).Validate())
}
