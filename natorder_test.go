package natorder

import (
	"fmt"
	"os"
	"path"
	"reflect"
	"runtime"
	"testing"

	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
)

func openDB() *gorm.DB {
	dir, err := os.MkdirTemp("", "natorder_*")
	if err != nil {
		panic(fmt.Sprintf("failed to create tmp dir: %+v", err))
	}
	db, err := gorm.Open(
		sqlite.Open(path.Join(dir, "test.db")),
		&gorm.Config{},
	)
	if err != nil {
		panic(fmt.Sprintf("failed to open a database: %+v", err))
	}
	RegisterCallbacks(db)
	return db
}

func assertEqual(t *testing.T, got, expected interface{}) bool {
	if !reflect.DeepEqual(got, expected) {
		_, file, line, _ := runtime.Caller(1)
		t.Errorf("Not equals:\n  file    : %s:%d\n  got     : %#v\n  expected: %#v\n", file, line, got, expected)
		return false
	}
	return true
}

func assertError(t *testing.T, err error) bool {
	if err == nil {
		_, file, line, _ := runtime.Caller(1)
		t.Errorf("NoError:\n  file    : %s:%d\n  ", file, line)
		return false
	}
	return true
}

func assertNoError(t *testing.T, err error) bool {
	if err != nil {
		_, file, line, _ := runtime.Caller(1)
		t.Errorf("Error:\n  file    : %s:%d\n  error   : %#v\n", file, line, err)
		return false
	}
	return true
}
