package ingest

import "time"

// Gorm models for every destination table. Column names are pinned explicitly
// so they line up with the canonical field names the coercion layer emits;
// the Load Executor writes through these names, never through struct fields.

// ProcessedArchive is the per-archive checksum ledger. An archive whose
// (path, sha256) pair is already recorded is skipped on later runs, which
// makes re-running a form family idempotent even for append-only tables.
type ProcessedArchive struct {
	ID            uint   `gorm:"primaryKey"`
	Path          string `gorm:"uniqueIndex:uniq_archive_path_sha;size:1024"`
	SHA256        string `gorm:"column:sha256;uniqueIndex:uniq_archive_path_sha;size:64"`
	Family        string `gorm:"index;size:16"`
	Period        string `gorm:"size:8"`
	SizeBytes     int64
	ProcessedAt   time.Time `gorm:"index"`
	RowsLoaded    int64
	RowsSkipped   int64
	RowsFiltered  int64
	TablesErrored int
	LastError     string `gorm:"type:text"`
}

func (ProcessedArchive) TableName() string { return "processed_archives" }

// Insider transactions (Forms 3/4/5).

type InsiderSubmission struct {
	ID                  uint       `gorm:"primaryKey"`
	AccessionNumber     string     `gorm:"column:accession_number;index;size:25"`
	FilingDate          *time.Time `gorm:"column:filing_date;index"`
	PeriodOfReport      *time.Time `gorm:"column:period_of_report"`
	DateOfOrigSub       *time.Time `gorm:"column:date_of_orig_sub"`
	DocumentType        string     `gorm:"column:document_type;size:16"`
	IssuerCIK           string     `gorm:"column:issuer_cik;index;size:10"`
	IssuerName          string     `gorm:"column:issuer_name;size:150"`
	IssuerTradingSymbol string     `gorm:"column:issuer_trading_symbol;size:12"`
}

func (InsiderSubmission) TableName() string { return "insider_submissions" }

type InsiderReportingOwner struct {
	ID                   uint   `gorm:"primaryKey"`
	AccessionNumber      string `gorm:"column:accession_number;index;size:25"`
	RptOwnerCIK          string `gorm:"column:rptowner_cik;index;size:10"`
	RptOwnerName         string `gorm:"column:rptowner_name;size:150"`
	RptOwnerRelationship string `gorm:"column:rptowner_relationship;size:60"`
	RptOwnerStreet1      string `gorm:"column:rptowner_street1;size:120"`
	RptOwnerCity         string `gorm:"column:rptowner_city;size:60"`
	RptOwnerState        string `gorm:"column:rptowner_state;size:10"`
}

func (InsiderReportingOwner) TableName() string { return "insider_reporting_owners" }

type InsiderNonDerivTransaction struct {
	ID                      uint       `gorm:"primaryKey"`
	AccessionNumber         string     `gorm:"column:accession_number;index;size:25"`
	NonDerivTransSK         int64      `gorm:"column:nonderiv_trans_sk;index"`
	SecurityTitle           string     `gorm:"column:security_title;size:120"`
	TransDate               *time.Time `gorm:"column:trans_date;index"`
	TransCode               string     `gorm:"column:trans_code;size:4"`
	TransShares             *float64   `gorm:"column:trans_shares"`
	TransPricePerShare      *float64   `gorm:"column:trans_price_per_share"`
	TransAcquiredDispCode   string     `gorm:"column:trans_acquired_disp_code;size:2"`
	ShrsOwndFolwngTrans     *float64   `gorm:"column:shrs_ownd_folwng_trans"`
	DirectIndirectOwnership string     `gorm:"column:direct_indirect_ownership;size:2"`
}

func (InsiderNonDerivTransaction) TableName() string { return "insider_nonderiv_transactions" }

type InsiderNonDerivHolding struct {
	ID                      uint     `gorm:"primaryKey"`
	AccessionNumber         string   `gorm:"column:accession_number;index;size:25"`
	NonDerivHoldingSK       int64    `gorm:"column:nonderiv_holding_sk;index"`
	SecurityTitle           string   `gorm:"column:security_title;size:120"`
	ShrsOwndFolwngTrans     *float64 `gorm:"column:shrs_ownd_folwng_trans"`
	DirectIndirectOwnership string   `gorm:"column:direct_indirect_ownership;size:2"`
}

func (InsiderNonDerivHolding) TableName() string { return "insider_nonderiv_holdings" }

type InsiderDerivTransaction struct {
	ID                       uint       `gorm:"primaryKey"`
	AccessionNumber          string     `gorm:"column:accession_number;index;size:25"`
	DerivTransSK             int64      `gorm:"column:deriv_trans_sk;index"`
	SecurityTitle            string     `gorm:"column:security_title;size:120"`
	ConvExercisePrice        *float64   `gorm:"column:conv_exercise_price"`
	TransDate                *time.Time `gorm:"column:trans_date;index"`
	TransCode                string     `gorm:"column:trans_code;size:4"`
	TransShares              *float64   `gorm:"column:trans_shares"`
	ExerciseDate             *time.Time `gorm:"column:exercise_date"`
	ExpirationDate           *time.Time `gorm:"column:expiration_date"`
	UnderlyingSecurityTitle  string     `gorm:"column:underlying_security_title;size:120"`
	UnderlyingSecurityShares *float64   `gorm:"column:underlying_security_shares"`
}

func (InsiderDerivTransaction) TableName() string { return "insider_deriv_transactions" }

type InsiderDerivHolding struct {
	ID                uint       `gorm:"primaryKey"`
	AccessionNumber   string     `gorm:"column:accession_number;index;size:25"`
	DerivHoldingSK    int64      `gorm:"column:deriv_holding_sk;index"`
	SecurityTitle     string     `gorm:"column:security_title;size:120"`
	ConvExercisePrice *float64   `gorm:"column:conv_exercise_price"`
	ExerciseDate      *time.Time `gorm:"column:exercise_date"`
	ExpirationDate    *time.Time `gorm:"column:expiration_date"`
}

func (InsiderDerivHolding) TableName() string { return "insider_deriv_holdings" }

type InsiderFootnote struct {
	ID              uint   `gorm:"primaryKey"`
	AccessionNumber string `gorm:"column:accession_number;index;size:25"`
	FootnoteID      string `gorm:"column:footnote_id;size:10"`
	FootnoteText    string `gorm:"column:footnote_text;type:text"`
}

func (InsiderFootnote) TableName() string { return "insider_footnotes" }

type InsiderOwnerSignature struct {
	ID                 uint       `gorm:"primaryKey"`
	AccessionNumber    string     `gorm:"column:accession_number;index;size:25"`
	OwnerSignatureName string     `gorm:"column:owner_signature_name;size:150"`
	OwnerSignatureDate *time.Time `gorm:"column:owner_signature_date"`
}

func (InsiderOwnerSignature) TableName() string { return "insider_owner_signatures" }

// Form 13F institutional holdings.

type Form13FSubmission struct {
	ID                      uint       `gorm:"primaryKey"`
	AccessionNumber         string     `gorm:"column:accession_number;index;size:25"`
	FilingDate              *time.Time `gorm:"column:filing_date;index"`
	SubmissionType          string     `gorm:"column:submission_type;size:16"`
	CIK                     string     `gorm:"column:cik;index;size:10"`
	PeriodOfReport          *time.Time `gorm:"column:period_of_report"`
	ReportCalendarOrQuarter *time.Time `gorm:"column:report_calendar_or_quarter"`
}

func (Form13FSubmission) TableName() string { return "form13f_submissions" }

type Form13FCoverPage struct {
	ID                          uint       `gorm:"primaryKey"`
	AccessionNumber             string     `gorm:"column:accession_number;index;size:25"`
	ReportCalendarOrQuarter     *time.Time `gorm:"column:report_calendar_or_quarter"`
	IsAmendment                 *bool      `gorm:"column:is_amendment"`
	AmendmentNo                 *int64     `gorm:"column:amendment_no"`
	AmendmentType               string     `gorm:"column:amendment_type;size:20"`
	FilingManagerName           string     `gorm:"column:filing_manager_name;size:150"`
	FilingManagerCity           string     `gorm:"column:filing_manager_city;size:60"`
	FilingManagerStateOrCountry string     `gorm:"column:filing_manager_state_or_country;size:10"`
	ReportType                  string     `gorm:"column:report_type;size:40"`
	Form13FFileNumber           string     `gorm:"column:form13f_file_number;size:20"`
}

func (Form13FCoverPage) TableName() string { return "form13f_cover_pages" }

type Form13FOtherManager struct {
	ID                uint   `gorm:"primaryKey"`
	AccessionNumber   string `gorm:"column:accession_number;index;size:25"`
	OtherManagerSK    int64  `gorm:"column:other_manager_sk;index"`
	CIK               string `gorm:"column:cik;size:10"`
	Form13FFileNumber string `gorm:"column:form13f_file_number;size:20"`
	Name              string `gorm:"column:name;size:150"`
}

func (Form13FOtherManager) TableName() string { return "form13f_other_managers" }

type Form13FSignature struct {
	ID              uint       `gorm:"primaryKey"`
	AccessionNumber string     `gorm:"column:accession_number;index;size:25"`
	Name            string     `gorm:"column:name;size:150"`
	Title           string     `gorm:"column:title;size:60"`
	Phone           string     `gorm:"column:phone;size:20"`
	Signature       string     `gorm:"column:signature;size:150"`
	City            string     `gorm:"column:city;size:60"`
	StateOrCountry  string     `gorm:"column:state_or_country;size:10"`
	SignatureDate   *time.Time `gorm:"column:signature_date"`
}

func (Form13FSignature) TableName() string { return "form13f_signatures" }

type Form13FSummaryPage struct {
	ID                         uint     `gorm:"primaryKey"`
	AccessionNumber            string   `gorm:"column:accession_number;index;size:25"`
	OtherIncludedManagersCount *int64   `gorm:"column:other_included_managers_count"`
	TableEntryTotal            *int64   `gorm:"column:table_entry_total"`
	TableValueTotal            *float64 `gorm:"column:table_value_total"`
	IsConfidentialOmitted      *bool    `gorm:"column:is_confidential_omitted"`
}

func (Form13FSummaryPage) TableName() string { return "form13f_summary_pages" }

type Form13FOtherManager2 struct {
	ID                uint   `gorm:"primaryKey"`
	AccessionNumber   string `gorm:"column:accession_number;index;size:25"`
	SequenceNumber    int64  `gorm:"column:sequence_number;index"`
	CIK               string `gorm:"column:cik;size:10"`
	Form13FFileNumber string `gorm:"column:form13f_file_number;size:20"`
	Name              string `gorm:"column:name;size:150"`
}

func (Form13FOtherManager2) TableName() string { return "form13f_other_managers2" }

type Form13FInfoTable struct {
	ID                      uint     `gorm:"primaryKey"`
	AccessionNumber         string   `gorm:"column:accession_number;index;size:25"`
	InfoTableSK             int64    `gorm:"column:infotable_sk;index"`
	NameOfIssuer            string   `gorm:"column:name_of_issuer;index;size:200"`
	TitleOfClass            string   `gorm:"column:title_of_class;size:150"`
	CUSIP                   string   `gorm:"column:cusip;index;size:9"`
	Value                   *float64 `gorm:"column:value"`
	SharesOrPrincipalAmount *float64 `gorm:"column:shares_or_principal_amount"`
	SharesOrPrincipalType   string   `gorm:"column:shares_or_principal_type;size:10"`
	PutCall                 string   `gorm:"column:put_call;size:10"`
	InvestmentDiscretion    string   `gorm:"column:investment_discretion;size:10"`
	OtherManager            string   `gorm:"column:other_manager;size:100"`
	VotingAuthSole          *int64   `gorm:"column:voting_auth_sole"`
	VotingAuthShared        *int64   `gorm:"column:voting_auth_shared"`
	VotingAuthNone          *int64   `gorm:"column:voting_auth_none"`
}

func (Form13FInfoTable) TableName() string { return "form13f_info_tables" }

// N-PORT monthly fund portfolio reports.

type NPORTSubmission struct {
	ID              uint       `gorm:"primaryKey"`
	AccessionNumber string     `gorm:"column:accession_number;index;size:25"`
	FilingDate      *time.Time `gorm:"column:filing_date;index"`
	SubmissionType  string     `gorm:"column:submission_type;size:16"`
	CIK             string     `gorm:"column:cik;index;size:10"`
	ReportPeriodEnd *time.Time `gorm:"column:report_period_end"`
}

func (NPORTSubmission) TableName() string { return "nport_submissions" }

type NPORTGeneralInfo struct {
	ID               uint     `gorm:"primaryKey"`
	AccessionNumber  string   `gorm:"column:accession_number;index;size:25"`
	RegistrantName   string   `gorm:"column:registrant_name;size:150"`
	SeriesID         string   `gorm:"column:series_id;index;size:12"`
	SeriesName       string   `gorm:"column:series_name;size:150"`
	TotalAssets      *float64 `gorm:"column:total_assets"`
	TotalLiabilities *float64 `gorm:"column:total_liabilities"`
	NetAssets        *float64 `gorm:"column:net_assets"`
}

func (NPORTGeneralInfo) TableName() string { return "nport_general_info" }

type NPORTHolding struct {
	ID                    uint     `gorm:"primaryKey"`
	AccessionNumber       string   `gorm:"column:accession_number;index;size:25"`
	HoldingSK             int64    `gorm:"column:holding_sk;index"`
	IssuerName            string   `gorm:"column:issuer_name;index;size:200"`
	LEI                   string   `gorm:"column:lei;size:20"`
	Title                 string   `gorm:"column:title;size:200"`
	CUSIP                 string   `gorm:"column:cusip;index;size:9"`
	Balance               *float64 `gorm:"column:balance"`
	Units                 string   `gorm:"column:units;size:20"`
	Currency              string   `gorm:"column:currency;size:3"`
	ValueUSD              *float64 `gorm:"column:value_usd"`
	PercentageOfNetAssets *float64 `gorm:"column:percentage_of_net_assets"`
	AssetCategory         string   `gorm:"column:asset_category;size:10"`
	IsRestrictedSecurity  *bool    `gorm:"column:is_restricted_security"`
	FairValueLevel        string   `gorm:"column:fair_value_level;size:4"`
}

func (NPORTHolding) TableName() string { return "nport_holdings" }

type NPORTDerivative struct {
	ID                     uint       `gorm:"primaryKey"`
	AccessionNumber        string     `gorm:"column:accession_number;index;size:25"`
	DerivativeSK           int64      `gorm:"column:derivative_sk;index"`
	CounterpartyName       string     `gorm:"column:counterparty_name;size:200"`
	CounterpartyLEI        string     `gorm:"column:counterparty_lei;index;size:20"`
	DerivativeCategory     string     `gorm:"column:derivative_category;size:10"`
	NotionalAmount         *float64   `gorm:"column:notional_amount"`
	Currency               string     `gorm:"column:currency;size:3"`
	UnrealizedAppreciation *float64   `gorm:"column:unrealized_appreciation"`
	TerminationDate        *time.Time `gorm:"column:termination_date"`
	Delta                  *float64   `gorm:"column:delta"`
}

func (NPORTDerivative) TableName() string { return "nport_derivatives" }

// N-MFP money market fund census.

type NMFPSubmission struct {
	ID                        uint       `gorm:"primaryKey"`
	AccessionNumber           string     `gorm:"column:accession_number;index;size:25"`
	FilingDate                *time.Time `gorm:"column:filing_date;index"`
	SubmissionType            string     `gorm:"column:submission_type;size:16"`
	CIK                       string     `gorm:"column:cik;index;size:10"`
	ReportDate                *time.Time `gorm:"column:report_date"`
	SeriesID                  string     `gorm:"column:series_id;size:12"`
	TotalShareClassesInSeries *int64     `gorm:"column:total_share_classes_in_series"`
	FinalFilingFlag           *bool      `gorm:"column:final_filing_flag"`
}

func (NMFPSubmission) TableName() string { return "nmfp_submissions" }

type NMFPFund struct {
	ID              uint   `gorm:"primaryKey"`
	AccessionNumber string `gorm:"column:accession_number;index;size:25"`
	CIK             string `gorm:"column:cik;size:10"`
	RegistrantName  string `gorm:"column:registrant_name;size:150"`
	RegistrantLEI   string `gorm:"column:registrant_lei;size:20"`
	SeriesID        string `gorm:"column:series_id;size:12"`
}

func (NMFPFund) TableName() string { return "nmfp_funds" }

type NMFPSeriesLevelInfo struct {
	ID                       uint     `gorm:"primaryKey"`
	AccessionNumber          string   `gorm:"column:accession_number;index;size:25"`
	FeederFundFlag           *bool    `gorm:"column:feeder_fund_flag"`
	MasterFundFlag           *bool    `gorm:"column:master_fund_flag"`
	MoneyMarketFundCategory  string   `gorm:"column:money_market_fund_category;size:40"`
	AveragePortfolioMaturity *int64   `gorm:"column:average_portfolio_maturity"`
	AverageLifeMaturity      *int64   `gorm:"column:average_life_maturity"`
	TotalValueOtherAssets    *float64 `gorm:"column:total_value_other_assets"`
	TotalValueLiabilities    *float64 `gorm:"column:total_value_liabilities"`
	NetAssetOfSeries         *float64 `gorm:"column:net_asset_of_series"`
	SevenDayGrossYield       *float64 `gorm:"column:seven_day_gross_yield"`
}

func (NMFPSeriesLevelInfo) TableName() string { return "nmfp_series_level_info" }

type NMFPAdviser struct {
	ID                uint   `gorm:"primaryKey"`
	AccessionNumber   string `gorm:"column:accession_number;index;size:25"`
	AdviserName       string `gorm:"column:adviser_name;size:150"`
	AdviserFileNumber string `gorm:"column:adviser_file_number;size:20"`
}

func (NMFPAdviser) TableName() string { return "nmfp_advisers" }

type NMFPAdministrator struct {
	ID                uint   `gorm:"primaryKey"`
	AccessionNumber   string `gorm:"column:accession_number;index;size:25"`
	AdministratorName string `gorm:"column:administrator_name;size:150"`
}

func (NMFPAdministrator) TableName() string { return "nmfp_administrators" }

type NMFPTransferAgent struct {
	ID                      uint   `gorm:"primaryKey"`
	AccessionNumber         string `gorm:"column:accession_number;index;size:25"`
	TransferAgentName       string `gorm:"column:transfer_agent_name;size:150"`
	TransferAgentCIK        string `gorm:"column:transfer_agent_cik;size:10"`
	TransferAgentFileNumber string `gorm:"column:transfer_agent_file_number;size:20"`
}

func (NMFPTransferAgent) TableName() string { return "nmfp_transfer_agents" }

// Form D offering notices.

type FormDSubmission struct {
	ID                 uint       `gorm:"primaryKey"`
	AccessionNumber    string     `gorm:"column:accession_number;index;size:25"`
	FileNum            string     `gorm:"column:file_num;size:20"`
	FilingDate         *time.Time `gorm:"column:filing_date;index"`
	SICCode            string     `gorm:"column:sic_code;size:8"`
	SubmissionType     string     `gorm:"column:submission_type;size:10"`
	Over100PersonsFlag *bool      `gorm:"column:over100_persons_flag"`
	Over100IssuerFlag  *bool      `gorm:"column:over100_issuer_flag"`
}

func (FormDSubmission) TableName() string { return "formd_submissions" }

type FormDIssuer struct {
	ID              uint   `gorm:"primaryKey"`
	AccessionNumber string `gorm:"column:accession_number;index;size:25"`
	IssuerSeqKey    int64  `gorm:"column:issuer_seq_key;index"`
	CIK             string `gorm:"column:cik;index;size:10"`
	EntityName      string `gorm:"column:entity_name;size:150"`
	Street1         string `gorm:"column:street1;size:120"`
	City            string `gorm:"column:city;size:60"`
	StateOrCountry  string `gorm:"column:state_or_country;size:10"`
	ZipCode         string `gorm:"column:zip_code;size:10"`
	EntityType      string `gorm:"column:entity_type;size:60"`
	YearOfIncValue  string `gorm:"column:year_of_inc_value;size:10"`
}

func (FormDIssuer) TableName() string { return "formd_issuers" }

type FormDOffering struct {
	ID                   uint       `gorm:"primaryKey"`
	AccessionNumber      string     `gorm:"column:accession_number;index;size:25"`
	IndustryGroupType    string     `gorm:"column:industry_group_type;size:60"`
	InvestmentFundType   string     `gorm:"column:investment_fund_type;size:60"`
	Is40Act              *bool      `gorm:"column:is_40_act"`
	RevenueRange         string     `gorm:"column:revenue_range;size:40"`
	FederalExemptions    string     `gorm:"column:federal_exemptions;size:100"`
	DateOfFirstSale      *time.Time `gorm:"column:date_of_first_sale"`
	MoreThanOneYearFlag  *bool      `gorm:"column:more_than_one_year_flag"`
	TotalOfferingAmount  *float64   `gorm:"column:total_offering_amount"`
	TotalAmountSold      *float64   `gorm:"column:total_amount_sold"`
	TotalRemaining       *float64   `gorm:"column:total_remaining"`
	SalesAmtEstimateFlag *bool      `gorm:"column:sales_amt_estimate_flag"`
}

func (FormDOffering) TableName() string { return "formd_offerings" }

type FormDRecipient struct {
	ID                    uint   `gorm:"primaryKey"`
	AccessionNumber       string `gorm:"column:accession_number;index;size:25"`
	RecipientSeqKey       int64  `gorm:"column:recipient_seq_key;index"`
	RecipientName         string `gorm:"column:recipient_name;size:150"`
	RecipientCRDNumber    string `gorm:"column:recipient_crd_number;size:15"`
	AssociatedBDName      string `gorm:"column:associated_bd_name;size:150"`
	AssociatedBDCRDNumber string `gorm:"column:associated_bd_crd_number;size:15"`
	StatesOfSolicitation  string `gorm:"column:states_of_solicitation;size:200"`
}

func (FormDRecipient) TableName() string { return "formd_recipients" }

type FormDRelatedPerson struct {
	ID                        uint   `gorm:"primaryKey"`
	AccessionNumber           string `gorm:"column:accession_number;index;size:25"`
	RelatedPersonSeqKey       int64  `gorm:"column:related_person_seq_key;index"`
	FirstName                 string `gorm:"column:first_name;size:60"`
	LastName                  string `gorm:"column:last_name;size:60"`
	Street1                   string `gorm:"column:street1;size:120"`
	City                      string `gorm:"column:city;size:60"`
	StateOrCountry            string `gorm:"column:state_or_country;size:10"`
	Relationship              string `gorm:"column:relationship;size:60"`
	RelationshipClarification string `gorm:"column:relationship_clarification;type:text"`
}

func (FormDRelatedPerson) TableName() string { return "formd_related_persons" }

type FormDSignature struct {
	ID              uint       `gorm:"primaryKey"`
	AccessionNumber string     `gorm:"column:accession_number;index;size:25"`
	SignatureSeqKey int64      `gorm:"column:signature_seq_key;index"`
	IssuerName      string     `gorm:"column:issuer_name;size:150"`
	SignatureName   string     `gorm:"column:signature_name;size:150"`
	NameOfSigner    string     `gorm:"column:name_of_signer;size:150"`
	SignatureTitle  string     `gorm:"column:signature_title;size:60"`
	SignatureDate   *time.Time `gorm:"column:signature_date"`
}

func (FormDSignature) TableName() string { return "formd_signatures" }

// Exchange trading metrics.

type ExchangeMetric struct {
	ID                uint       `gorm:"primaryKey"`
	Date              *time.Time `gorm:"column:date;index"`
	Ticker            string     `gorm:"column:ticker;index;size:12"`
	Security          string     `gorm:"column:security;size:150"`
	McapRank          *int64     `gorm:"column:mcap_rank"`
	TurnRank          *int64     `gorm:"column:turn_rank"`
	VolatilityRank    *int64     `gorm:"column:volatility_rank"`
	PriceRank         *int64     `gorm:"column:price_rank"`
	Cancels           *int64     `gorm:"column:cancels"`
	Trades            *int64     `gorm:"column:trades"`
	LitTrades         *int64     `gorm:"column:lit_trades"`
	OddLots           *int64     `gorm:"column:odd_lots"`
	Hidden            *int64     `gorm:"column:hidden"`
	TradesForHidden   *int64     `gorm:"column:trades_for_hidden"`
	OrderVol          *float64   `gorm:"column:order_vol"`
	TradeVol          *float64   `gorm:"column:trade_vol"`
	LitVol            *float64   `gorm:"column:lit_vol"`
	OddLotVol         *float64   `gorm:"column:odd_lot_vol"`
	HiddenVol         *float64   `gorm:"column:hidden_vol"`
	TradeVolForHidden *float64   `gorm:"column:trade_vol_for_hidden"`
}

func (ExchangeMetric) TableName() string { return "exchange_metrics" }

// CFTC swap registries. Upsert tables: one row per LEI, refreshed in place.

type SwapDealer struct {
	ID                 uint       `gorm:"primaryKey"`
	LEI                string     `gorm:"column:lei;uniqueIndex;size:20"`
	Name               string     `gorm:"column:name;size:200"`
	RegistrationStatus string     `gorm:"column:registration_status;size:30"`
	RegistrationDate   *time.Time `gorm:"column:registration_date"`
	Address            string     `gorm:"column:address;size:200"`
	City               string     `gorm:"column:city;size:60"`
	State              string     `gorm:"column:state;size:10"`
	Country            string     `gorm:"column:country;size:40"`
	LastUpdated        time.Time  `gorm:"column:last_updated;index"`
}

func (SwapDealer) TableName() string { return "swap_dealers" }

type SwapExecutionFacility struct {
	ID                 uint       `gorm:"primaryKey"`
	LEI                string     `gorm:"column:lei;uniqueIndex;size:20"`
	Name               string     `gorm:"column:name;size:200"`
	RegistrationStatus string     `gorm:"column:registration_status;size:30"`
	RegistrationDate   *time.Time `gorm:"column:registration_date"`
	ProductsOffered    string     `gorm:"column:products_offered;size:200"`
	City               string     `gorm:"column:city;size:60"`
	Country            string     `gorm:"column:country;size:40"`
	LastUpdated        time.Time  `gorm:"column:last_updated;index"`
}

func (SwapExecutionFacility) TableName() string { return "swap_execution_facilities" }

type SwapDataRepository struct {
	ID                 uint       `gorm:"primaryKey"`
	LEI                string     `gorm:"column:lei;uniqueIndex;size:20"`
	Name               string     `gorm:"column:name;size:200"`
	RegistrationStatus string     `gorm:"column:registration_status;size:30"`
	RegistrationDate   *time.Time `gorm:"column:registration_date"`
	AssetClasses       string     `gorm:"column:asset_classes;size:200"`
	City               string     `gorm:"column:city;size:60"`
	Country            string     `gorm:"column:country;size:40"`
	LastUpdated        time.Time  `gorm:"column:last_updated;index"`
}

func (SwapDataRepository) TableName() string { return "swap_data_repositories" }
