package database

import (
	"testing"

	"github.com/fulldump/biff"
)

func TestDatabase(t *testing.T) {

	biff.Alternative("New database", func(a *biff.A) {

		db := NewDatabase(&Config{})
		biff.AssertEqual(db.GetStatus(), StatusOpening)
		biff.AssertNil(db.Load())
		biff.AssertEqual(db.GetStatus(), StatusOperating)

		a.Alternative("Create table", func(a *biff.A) {
			t, err := db.CreateTable("zeta")
			biff.AssertNil(err)
			biff.AssertNotNil(t)

			a.Alternative("Create duplicated", func(a *biff.A) {
				_, err := db.CreateTable("zeta")
				biff.AssertEqual(err, ErrTableAlreadyExists)
			})

			a.Alternative("List ordered by name", func(a *biff.A) {
				db.CreateTable("alpha")
				db.CreateTable("mid")

				names := []string{}
				for _, e := range db.ListTables() {
					names = append(names, e.Name)
				}
				biff.AssertEqual(names, []string{"alpha", "mid", "zeta"})
			})

			a.Alternative("Get table", func(a *biff.A) {
				t.Set("x", "p", 1)

				got, ok := db.GetTable("zeta")
				biff.AssertTrue(ok)
				biff.AssertTrue(got.Has("x", "p"))
			})

			a.Alternative("Drop table", func(a *biff.A) {
				biff.AssertNil(db.DropTable("zeta"))
				_, ok := db.GetTable("zeta")
				biff.AssertFalse(ok)
				biff.AssertEqual(db.DropTable("zeta"), ErrTableNotFound)
			})
		})

		a.Alternative("Empty name", func(a *biff.A) {
			_, err := db.CreateTable("  ")
			biff.AssertNotNil(err)
		})

		a.Alternative("Stop", func(a *biff.A) {
			db.CreateTable("one")
			biff.AssertNil(db.Stop())
			biff.AssertEqual(db.GetStatus(), StatusClosing)
			biff.AssertEqual(len(db.ListTables()), 0)
		})
	})
}
