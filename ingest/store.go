package ingest

import (
	"github.com/glebarez/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// allModels lists every destination table plus the archive ledger, in
// migration order.
var allModels = []any{
	&ProcessedArchive{},

	&InsiderSubmission{},
	&InsiderReportingOwner{},
	&InsiderNonDerivTransaction{},
	&InsiderNonDerivHolding{},
	&InsiderDerivTransaction{},
	&InsiderDerivHolding{},
	&InsiderFootnote{},
	&InsiderOwnerSignature{},

	&Form13FSubmission{},
	&Form13FCoverPage{},
	&Form13FOtherManager{},
	&Form13FSignature{},
	&Form13FSummaryPage{},
	&Form13FOtherManager2{},
	&Form13FInfoTable{},

	&NPORTSubmission{},
	&NPORTGeneralInfo{},
	&NPORTHolding{},
	&NPORTDerivative{},

	&NMFPSubmission{},
	&NMFPFund{},
	&NMFPSeriesLevelInfo{},
	&NMFPAdviser{},
	&NMFPAdministrator{},
	&NMFPTransferAgent{},

	&FormDSubmission{},
	&FormDIssuer{},
	&FormDOffering{},
	&FormDRecipient{},
	&FormDRelatedPerson{},
	&FormDSignature{},

	&ExchangeMetric{},

	&SwapDealer{},
	&SwapExecutionFacility{},
	&SwapDataRepository{},
}

func OpenDB(path string) (*gorm.DB, error) {
	db, err := gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		return nil, err
	}
	if err := db.AutoMigrate(allModels...); err != nil {
		return nil, err
	}
	return db, nil
}

// OpenQueryDB opens an existing SQLite DB for querying without mutating schema.
func OpenQueryDB(path string) (*gorm.DB, error) {
	return gorm.Open(sqlite.Open(path), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
}
