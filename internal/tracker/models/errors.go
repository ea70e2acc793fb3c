package models

import "fmt"

var (
	ErrorDatabaseUndefined       = fmt.Errorf("database_undefined")
	ErrorDeleteFailed            = fmt.Errorf("delete_failed")
	ErrorDuplicateEntry          = fmt.Errorf("duplicate_entry")
	ErrorInsertFailed            = fmt.Errorf("insert_failed")
	ErrorInvalidInput            = fmt.Errorf("input_validation_failed")
	ErrorNotFound                = fmt.Errorf("not_found")
	ErrorRowsAffectedCheckFailed = fmt.Errorf("rows_affected_check_failed")
	ErrorSelectFailed            = fmt.Errorf("select_failed")
	ErrorSelectsFailed           = fmt.Errorf("selects_failed")
	ErrorStmtPreparationFailed   = fmt.Errorf("stmt_preparation_failed")

	mysqlErrorDuplicateEntryCode uint16 = 1062
)
