package apitablev1

import (
	"github.com/fulldump/box"

	"github.com/fulldump/crosstable/service"
)

// AttrMutates marks actions that modify tables.
const AttrMutates = "mutates"

func BuildV1Table(v1 *box.R, s service.Servicer) *box.R {

	tables := v1.Resource("/tables").
		WithActions(
			box.Get(listTables(s)).WithName("listTables"),
			box.Post(createTable).WithName("createTable").WithAttribute(AttrMutates, true),
		)

	v1.Resource("/tables/{tableName}").
		WithActions(
			box.Get(getTable).WithName("getTable"),
			box.ActionPost(dropTable).WithName("drop").WithAttribute(AttrMutates, true),
			box.ActionPost(set).WithName("set").WithAttribute(AttrMutates, true),
			box.ActionPost(get).WithName("get"),
			box.ActionPost(has).WithName("has"),
			box.ActionPost(getAll).WithName("getAll"),
			box.ActionPost(deleteKeys).WithName("delete").WithAttribute(AttrMutates, true),
			box.ActionPost(items).WithName("items"),
			box.ActionPost(render).WithName("render"),
		)

	return tables
}
