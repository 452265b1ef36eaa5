package ingest

// Alias rows translating observed vendor header variants into canonical field
// names. Raw tokens are stored post-normalization (lowercase, underscored).
// The set is empirically derived from historical header vintages per form and
// grows by adding rows here as new vintages appear; Registry.Validate refuses
// any row whose canonical side is not a schema field.
var aliasRows = []struct {
	family    string
	table     string
	raw       string
	canonical string
}{
	// Insider (Forms 3/4/5). Vintages before 2015 shipped headers without
	// underscores; "excercise_date" is a real misspelling in the vendor data.
	{FamilyInsider, "insider_submissions", "accessionnumber", "accession_number"},
	{FamilyInsider, "insider_submissions", "filingdate", "filing_date"},
	{FamilyInsider, "insider_submissions", "periodofreport", "period_of_report"},
	{FamilyInsider, "insider_submissions", "dateoforigsub", "date_of_orig_sub"},
	{FamilyInsider, "insider_submissions", "documenttype", "document_type"},
	{FamilyInsider, "insider_submissions", "issuercik", "issuer_cik"},
	{FamilyInsider, "insider_submissions", "issuername", "issuer_name"},
	{FamilyInsider, "insider_submissions", "issuertradingsymbol", "issuer_trading_symbol"},
	{FamilyInsider, "insider_reporting_owners", "accessionnumber", "accession_number"},
	{FamilyInsider, "insider_reporting_owners", "rptownercik", "rptowner_cik"},
	{FamilyInsider, "insider_reporting_owners", "rptownername", "rptowner_name"},
	{FamilyInsider, "insider_reporting_owners", "rptownerrelationship", "rptowner_relationship"},
	{FamilyInsider, "insider_reporting_owners", "rptownerstreet1", "rptowner_street1"},
	{FamilyInsider, "insider_reporting_owners", "rptownercity", "rptowner_city"},
	{FamilyInsider, "insider_reporting_owners", "rptownerstate", "rptowner_state"},
	{FamilyInsider, "insider_nonderiv_transactions", "accessionnumber", "accession_number"},
	{FamilyInsider, "insider_nonderiv_transactions", "nonderivtranssk", "nonderiv_trans_sk"},
	{FamilyInsider, "insider_nonderiv_transactions", "securitytitle", "security_title"},
	{FamilyInsider, "insider_nonderiv_transactions", "transdate", "trans_date"},
	{FamilyInsider, "insider_nonderiv_transactions", "transcode", "trans_code"},
	{FamilyInsider, "insider_nonderiv_transactions", "transshares", "trans_shares"},
	{FamilyInsider, "insider_nonderiv_transactions", "transpricepershare", "trans_price_per_share"},
	{FamilyInsider, "insider_nonderiv_transactions", "transacquireddispcd", "trans_acquired_disp_code"},
	{FamilyInsider, "insider_nonderiv_transactions", "trans_acquired_disp_cd", "trans_acquired_disp_code"},
	{FamilyInsider, "insider_nonderiv_transactions", "shrsowndfolwngtrans", "shrs_ownd_folwng_trans"},
	{FamilyInsider, "insider_nonderiv_transactions", "directindirectownership", "direct_indirect_ownership"},
	{FamilyInsider, "insider_nonderiv_holdings", "accessionnumber", "accession_number"},
	{FamilyInsider, "insider_nonderiv_holdings", "nonderivholdingsk", "nonderiv_holding_sk"},
	{FamilyInsider, "insider_nonderiv_holdings", "securitytitle", "security_title"},
	{FamilyInsider, "insider_nonderiv_holdings", "shrsowndfolwngtrans", "shrs_ownd_folwng_trans"},
	{FamilyInsider, "insider_nonderiv_holdings", "directindirectownership", "direct_indirect_ownership"},
	{FamilyInsider, "insider_deriv_transactions", "accessionnumber", "accession_number"},
	{FamilyInsider, "insider_deriv_transactions", "derivtranssk", "deriv_trans_sk"},
	{FamilyInsider, "insider_deriv_transactions", "securitytitle", "security_title"},
	{FamilyInsider, "insider_deriv_transactions", "convexerciseprice", "conv_exercise_price"},
	{FamilyInsider, "insider_deriv_transactions", "transdate", "trans_date"},
	{FamilyInsider, "insider_deriv_transactions", "transcode", "trans_code"},
	{FamilyInsider, "insider_deriv_transactions", "transshares", "trans_shares"},
	{FamilyInsider, "insider_deriv_transactions", "excercise_date", "exercise_date"},
	{FamilyInsider, "insider_deriv_transactions", "excercisedate", "exercise_date"},
	{FamilyInsider, "insider_deriv_transactions", "expirationdate", "expiration_date"},
	{FamilyInsider, "insider_deriv_transactions", "undlyngsectitle", "underlying_security_title"},
	{FamilyInsider, "insider_deriv_transactions", "undlyngsecshares", "underlying_security_shares"},
	{FamilyInsider, "insider_deriv_holdings", "accessionnumber", "accession_number"},
	{FamilyInsider, "insider_deriv_holdings", "derivholdingsk", "deriv_holding_sk"},
	{FamilyInsider, "insider_deriv_holdings", "securitytitle", "security_title"},
	{FamilyInsider, "insider_deriv_holdings", "convexerciseprice", "conv_exercise_price"},
	{FamilyInsider, "insider_deriv_holdings", "excercise_date", "exercise_date"},
	{FamilyInsider, "insider_deriv_holdings", "excercisedate", "exercise_date"},
	{FamilyInsider, "insider_deriv_holdings", "expirationdate", "expiration_date"},
	{FamilyInsider, "insider_footnotes", "accessionnumber", "accession_number"},
	{FamilyInsider, "insider_footnotes", "footnoteid", "footnote_id"},
	{FamilyInsider, "insider_footnotes", "footnotetxt", "footnote_text"},
	{FamilyInsider, "insider_footnotes", "footnote_txt", "footnote_text"},
	{FamilyInsider, "insider_owner_signatures", "accessionnumber", "accession_number"},
	{FamilyInsider, "insider_owner_signatures", "ownersignaturename", "owner_signature_name"},
	{FamilyInsider, "insider_owner_signatures", "ownersignaturedate", "owner_signature_date"},

	// Form 13F.
	{FamilyForm13F, "form13f_submissions", "accessionnumber", "accession_number"},
	{FamilyForm13F, "form13f_submissions", "filingdate", "filing_date"},
	{FamilyForm13F, "form13f_submissions", "submissiontype", "submission_type"},
	{FamilyForm13F, "form13f_submissions", "periodofreport", "period_of_report"},
	{FamilyForm13F, "form13f_submissions", "reportcalendarorquarter", "report_calendar_or_quarter"},
	{FamilyForm13F, "form13f_cover_pages", "accessionnumber", "accession_number"},
	{FamilyForm13F, "form13f_cover_pages", "reportcalendarorquarter", "report_calendar_or_quarter"},
	{FamilyForm13F, "form13f_cover_pages", "isamendment", "is_amendment"},
	{FamilyForm13F, "form13f_cover_pages", "amendmentno", "amendment_no"},
	{FamilyForm13F, "form13f_cover_pages", "amendmenttype", "amendment_type"},
	{FamilyForm13F, "form13f_cover_pages", "filingmanager_name", "filing_manager_name"},
	{FamilyForm13F, "form13f_cover_pages", "filingmanager_city", "filing_manager_city"},
	{FamilyForm13F, "form13f_cover_pages", "filingmanager_stateorcountry", "filing_manager_state_or_country"},
	{FamilyForm13F, "form13f_cover_pages", "reporttype", "report_type"},
	{FamilyForm13F, "form13f_cover_pages", "form13ffilenumber", "form13f_file_number"},
	{FamilyForm13F, "form13f_other_managers", "accessionnumber", "accession_number"},
	{FamilyForm13F, "form13f_other_managers", "othermanagersk", "other_manager_sk"},
	{FamilyForm13F, "form13f_other_managers", "form13ffilenumber", "form13f_file_number"},
	{FamilyForm13F, "form13f_signatures", "accessionnumber", "accession_number"},
	{FamilyForm13F, "form13f_signatures", "stateorcountry", "state_or_country"},
	{FamilyForm13F, "form13f_signatures", "signaturedate", "signature_date"},
	{FamilyForm13F, "form13f_summary_pages", "accessionnumber", "accession_number"},
	{FamilyForm13F, "form13f_summary_pages", "otherincludedmanagerscount", "other_included_managers_count"},
	{FamilyForm13F, "form13f_summary_pages", "tableentrytotal", "table_entry_total"},
	{FamilyForm13F, "form13f_summary_pages", "tablevaluetotal", "table_value_total"},
	{FamilyForm13F, "form13f_summary_pages", "isconfidentialomitted", "is_confidential_omitted"},
	{FamilyForm13F, "form13f_other_managers2", "accessionnumber", "accession_number"},
	{FamilyForm13F, "form13f_other_managers2", "sequencenumber", "sequence_number"},
	{FamilyForm13F, "form13f_other_managers2", "form13ffilenumber", "form13f_file_number"},
	{FamilyForm13F, "form13f_info_tables", "accessionnumber", "accession_number"},
	{FamilyForm13F, "form13f_info_tables", "infotablesk", "infotable_sk"},
	{FamilyForm13F, "form13f_info_tables", "nameofissuer", "name_of_issuer"},
	{FamilyForm13F, "form13f_info_tables", "titleofclass", "title_of_class"},
	{FamilyForm13F, "form13f_info_tables", "sshprnamt", "shares_or_principal_amount"},
	{FamilyForm13F, "form13f_info_tables", "sshprnamttype", "shares_or_principal_type"},
	{FamilyForm13F, "form13f_info_tables", "putcall", "put_call"},
	{FamilyForm13F, "form13f_info_tables", "investmentdiscretion", "investment_discretion"},
	{FamilyForm13F, "form13f_info_tables", "othermanager", "other_manager"},
	{FamilyForm13F, "form13f_info_tables", "votingauthsole", "voting_auth_sole"},
	{FamilyForm13F, "form13f_info_tables", "votingauthshared", "voting_auth_shared"},
	{FamilyForm13F, "form13f_info_tables", "votingauthnone", "voting_auth_none"},

	// N-PORT.
	{FamilyNPORT, "nport_submissions", "accessionnumber", "accession_number"},
	{FamilyNPORT, "nport_submissions", "filingdate", "filing_date"},
	{FamilyNPORT, "nport_submissions", "submissiontype", "submission_type"},
	{FamilyNPORT, "nport_submissions", "reportperiodend", "report_period_end"},
	{FamilyNPORT, "nport_submissions", "rep_period_end", "report_period_end"},
	{FamilyNPORT, "nport_general_info", "accessionnumber", "accession_number"},
	{FamilyNPORT, "nport_general_info", "registrantname", "registrant_name"},
	{FamilyNPORT, "nport_general_info", "seriesid", "series_id"},
	{FamilyNPORT, "nport_general_info", "seriesname", "series_name"},
	{FamilyNPORT, "nport_general_info", "totalassets", "total_assets"},
	{FamilyNPORT, "nport_general_info", "totalliabilities", "total_liabilities"},
	{FamilyNPORT, "nport_general_info", "netassets", "net_assets"},
	{FamilyNPORT, "nport_holdings", "accessionnumber", "accession_number"},
	{FamilyNPORT, "nport_holdings", "holdingsk", "holding_sk"},
	{FamilyNPORT, "nport_holdings", "issuername", "issuer_name"},
	{FamilyNPORT, "nport_holdings", "valueusd", "value_usd"},
	{FamilyNPORT, "nport_holdings", "valusd", "value_usd"},
	{FamilyNPORT, "nport_holdings", "pctval", "percentage_of_net_assets"},
	{FamilyNPORT, "nport_holdings", "assetcat", "asset_category"},
	{FamilyNPORT, "nport_holdings", "isrestrictedsec", "is_restricted_security"},
	{FamilyNPORT, "nport_holdings", "fairvallevel", "fair_value_level"},
	{FamilyNPORT, "nport_derivatives", "accessionnumber", "accession_number"},
	{FamilyNPORT, "nport_derivatives", "derivativesk", "derivative_sk"},
	{FamilyNPORT, "nport_derivatives", "counterpartyname", "counterparty_name"},
	{FamilyNPORT, "nport_derivatives", "counterpartylei", "counterparty_lei"},
	{FamilyNPORT, "nport_derivatives", "derivcat", "derivative_category"},
	{FamilyNPORT, "nport_derivatives", "notionalamt", "notional_amount"},
	{FamilyNPORT, "nport_derivatives", "unrealizedappreciation", "unrealized_appreciation"},
	{FamilyNPORT, "nport_derivatives", "terminationdate", "termination_date"},

	// N-MFP.
	{FamilyNMFP, "nmfp_submissions", "accessionnumber", "accession_number"},
	{FamilyNMFP, "nmfp_submissions", "filingdate", "filing_date"},
	{FamilyNMFP, "nmfp_submissions", "submissiontype", "submission_type"},
	{FamilyNMFP, "nmfp_submissions", "reportdate", "report_date"},
	{FamilyNMFP, "nmfp_submissions", "seriesid", "series_id"},
	{FamilyNMFP, "nmfp_submissions", "totalshareclassesinseries", "total_share_classes_in_series"},
	{FamilyNMFP, "nmfp_submissions", "finalfilingflag", "final_filing_flag"},
	{FamilyNMFP, "nmfp_funds", "accessionnumber", "accession_number"},
	{FamilyNMFP, "nmfp_funds", "registrantname", "registrant_name"},
	{FamilyNMFP, "nmfp_funds", "registrantlei", "registrant_lei"},
	{FamilyNMFP, "nmfp_funds", "seriesid", "series_id"},
	{FamilyNMFP, "nmfp_series_level_info", "accessionnumber", "accession_number"},
	{FamilyNMFP, "nmfp_series_level_info", "feederfundflag", "feeder_fund_flag"},
	{FamilyNMFP, "nmfp_series_level_info", "masterfundflag", "master_fund_flag"},
	{FamilyNMFP, "nmfp_series_level_info", "moneymarketfundcategory", "money_market_fund_category"},
	{FamilyNMFP, "nmfp_series_level_info", "averageportfoliomaturity", "average_portfolio_maturity"},
	{FamilyNMFP, "nmfp_series_level_info", "averagelifematurity", "average_life_maturity"},
	{FamilyNMFP, "nmfp_series_level_info", "totalvalueotherassets", "total_value_other_assets"},
	{FamilyNMFP, "nmfp_series_level_info", "totalvalueliabilities", "total_value_liabilities"},
	{FamilyNMFP, "nmfp_series_level_info", "netassetofseries", "net_asset_of_series"},
	{FamilyNMFP, "nmfp_series_level_info", "sevendaygrossyield", "seven_day_gross_yield"},
	{FamilyNMFP, "nmfp_advisers", "accessionnumber", "accession_number"},
	{FamilyNMFP, "nmfp_advisers", "advisername", "adviser_name"},
	{FamilyNMFP, "nmfp_advisers", "adviserfilenumber", "adviser_file_number"},
	{FamilyNMFP, "nmfp_administrators", "accessionnumber", "accession_number"},
	{FamilyNMFP, "nmfp_administrators", "administratorname", "administrator_name"},
	{FamilyNMFP, "nmfp_transfer_agents", "accessionnumber", "accession_number"},
	{FamilyNMFP, "nmfp_transfer_agents", "transferagentname", "transfer_agent_name"},
	{FamilyNMFP, "nmfp_transfer_agents", "transferagentcik", "transfer_agent_cik"},
	{FamilyNMFP, "nmfp_transfer_agents", "transferagentfilenumber", "transfer_agent_file_number"},

	// Form D. Quarter packages ship headers fully squashed (ACCESSIONNUMBER).
	{FamilyFormD, "formd_submissions", "accessionnumber", "accession_number"},
	{FamilyFormD, "formd_submissions", "filenum", "file_num"},
	{FamilyFormD, "formd_submissions", "filingdate", "filing_date"},
	{FamilyFormD, "formd_submissions", "siccode", "sic_code"},
	{FamilyFormD, "formd_submissions", "submissiontype", "submission_type"},
	{FamilyFormD, "formd_submissions", "over100personsflag", "over100_persons_flag"},
	{FamilyFormD, "formd_submissions", "over100issuerflag", "over100_issuer_flag"},
	{FamilyFormD, "formd_issuers", "accessionnumber", "accession_number"},
	{FamilyFormD, "formd_issuers", "issuerseqkey", "issuer_seq_key"},
	{FamilyFormD, "formd_issuers", "entityname", "entity_name"},
	{FamilyFormD, "formd_issuers", "stateorcountry", "state_or_country"},
	{FamilyFormD, "formd_issuers", "zipcode", "zip_code"},
	{FamilyFormD, "formd_issuers", "entitytype", "entity_type"},
	{FamilyFormD, "formd_issuers", "yearofinc_value", "year_of_inc_value"},
	{FamilyFormD, "formd_issuers", "yearofincvalue", "year_of_inc_value"},
	{FamilyFormD, "formd_offerings", "accessionnumber", "accession_number"},
	{FamilyFormD, "formd_offerings", "industrygrouptype", "industry_group_type"},
	{FamilyFormD, "formd_offerings", "investmentfundtype", "investment_fund_type"},
	{FamilyFormD, "formd_offerings", "is40act", "is_40_act"},
	{FamilyFormD, "formd_offerings", "revenuerange", "revenue_range"},
	{FamilyFormD, "formd_offerings", "federalexemptionsexclusions", "federal_exemptions"},
	{FamilyFormD, "formd_offerings", "federalexemptions", "federal_exemptions"},
	{FamilyFormD, "formd_offerings", "dateoffirstsale", "date_of_first_sale"},
	{FamilyFormD, "formd_offerings", "morethanoneyearflag", "more_than_one_year_flag"},
	{FamilyFormD, "formd_offerings", "totalofferingamount", "total_offering_amount"},
	{FamilyFormD, "formd_offerings", "totalamountsold", "total_amount_sold"},
	{FamilyFormD, "formd_offerings", "totalremaining", "total_remaining"},
	{FamilyFormD, "formd_offerings", "salesamtestimateflag", "sales_amt_estimate_flag"},
	{FamilyFormD, "formd_recipients", "accessionnumber", "accession_number"},
	{FamilyFormD, "formd_recipients", "recipientseqkey", "recipient_seq_key"},
	{FamilyFormD, "formd_recipients", "recipientname", "recipient_name"},
	{FamilyFormD, "formd_recipients", "recipientcrdnumber", "recipient_crd_number"},
	{FamilyFormD, "formd_recipients", "associatedbdname", "associated_bd_name"},
	{FamilyFormD, "formd_recipients", "associatedbdcrdnumber", "associated_bd_crd_number"},
	{FamilyFormD, "formd_recipients", "statesofsolicitation", "states_of_solicitation"},
	{FamilyFormD, "formd_related_persons", "accessionnumber", "accession_number"},
	{FamilyFormD, "formd_related_persons", "relatedpersonseqkey", "related_person_seq_key"},
	{FamilyFormD, "formd_related_persons", "firstname", "first_name"},
	{FamilyFormD, "formd_related_persons", "lastname", "last_name"},
	{FamilyFormD, "formd_related_persons", "stateorcountry", "state_or_country"},
	{FamilyFormD, "formd_related_persons", "relationshipclarification", "relationship_clarification"},
	{FamilyFormD, "formd_signatures", "accessionnumber", "accession_number"},
	{FamilyFormD, "formd_signatures", "signatureseqkey", "signature_seq_key"},
	{FamilyFormD, "formd_signatures", "issuername", "issuer_name"},
	{FamilyFormD, "formd_signatures", "signaturename", "signature_name"},
	{FamilyFormD, "formd_signatures", "nameofsigner", "name_of_signer"},
	{FamilyFormD, "formd_signatures", "signaturetitle", "signature_title"},
	{FamilyFormD, "formd_signatures", "signaturedate", "signature_date"},

	// Exchange metrics. "mcfrank" is the spelling the vendor actually ships.
	{FamilyExchange, "exchange_metrics", "mcfrank", "mcap_rank"},
	{FamilyExchange, "exchange_metrics", "mcaprank", "mcap_rank"},
	{FamilyExchange, "exchange_metrics", "turnrank", "turn_rank"},
	{FamilyExchange, "exchange_metrics", "volatilityrank", "volatility_rank"},
	{FamilyExchange, "exchange_metrics", "pricerank", "price_rank"},
	{FamilyExchange, "exchange_metrics", "littrades", "lit_trades"},
	{FamilyExchange, "exchange_metrics", "oddlots", "odd_lots"},
	{FamilyExchange, "exchange_metrics", "tradesforhidden", "trades_for_hidden"},
	{FamilyExchange, "exchange_metrics", "ordervol", "order_vol"},
	{FamilyExchange, "exchange_metrics", "tradevol", "trade_vol"},
	{FamilyExchange, "exchange_metrics", "litvol", "lit_vol"},
	{FamilyExchange, "exchange_metrics", "oddlotvol", "odd_lot_vol"},
	{FamilyExchange, "exchange_metrics", "hiddenvol", "hidden_vol"},
	{FamilyExchange, "exchange_metrics", "tradevolforhidden", "trade_vol_for_hidden"},

	// CFTC swap registries.
	{FamilySwapReg, "swap_dealers", "legalentityidentifier", "lei"},
	{FamilySwapReg, "swap_dealers", "lei_number", "lei"},
	{FamilySwapReg, "swap_dealers", "dealername", "name"},
	{FamilySwapReg, "swap_dealers", "registrantname", "name"},
	{FamilySwapReg, "swap_dealers", "regstatus", "registration_status"},
	{FamilySwapReg, "swap_dealers", "registrationstatus", "registration_status"},
	{FamilySwapReg, "swap_dealers", "registrationdate", "registration_date"},
	{FamilySwapReg, "swap_dealers", "addressline1", "address"},
	{FamilySwapReg, "swap_execution_facilities", "legalentityidentifier", "lei"},
	{FamilySwapReg, "swap_execution_facilities", "lei_number", "lei"},
	{FamilySwapReg, "swap_execution_facilities", "sefname", "name"},
	{FamilySwapReg, "swap_execution_facilities", "facilityname", "name"},
	{FamilySwapReg, "swap_execution_facilities", "regstatus", "registration_status"},
	{FamilySwapReg, "swap_execution_facilities", "registrationstatus", "registration_status"},
	{FamilySwapReg, "swap_execution_facilities", "registrationdate", "registration_date"},
	{FamilySwapReg, "swap_execution_facilities", "productsoffered", "products_offered"},
	{FamilySwapReg, "swap_data_repositories", "legalentityidentifier", "lei"},
	{FamilySwapReg, "swap_data_repositories", "lei_number", "lei"},
	{FamilySwapReg, "swap_data_repositories", "sdrname", "name"},
	{FamilySwapReg, "swap_data_repositories", "repositoryname", "name"},
	{FamilySwapReg, "swap_data_repositories", "regstatus", "registration_status"},
	{FamilySwapReg, "swap_data_repositories", "registrationstatus", "registration_status"},
	{FamilySwapReg, "swap_data_repositories", "registrationdate", "registration_date"},
	{FamilySwapReg, "swap_data_repositories", "assetclasses", "asset_classes"},
}

// DefaultAliases builds the alias set for every form family.
func DefaultAliases() *AliasSet {
	a := NewAliasSet()
	for _, row := range aliasRows {
		a.Add(row.family, row.table, row.raw, row.canonical)
	}
	return a
}
