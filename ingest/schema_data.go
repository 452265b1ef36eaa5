package ingest

// Canonical schema definitions for every destination table, one block per form
// family. Field order mirrors the destination column order. These are loaded
// once at process start and validated by Registry.Validate before any archive
// is opened.

// Form family names.
const (
	FamilyInsider  = "insider"
	FamilyForm13F  = "form13f"
	FamilyNPORT    = "nport"
	FamilyNMFP     = "nmfp"
	FamilyFormD    = "formd"
	FamilyExchange = "exchange"
	FamilySwapReg  = "swapreg"
)

func fld(name string, t SemanticType) Field {
	return Field{Name: name, Type: t}
}

func req(name string, t SemanticType) Field {
	return Field{Name: name, Type: t, Required: true}
}

func nk(name string, t SemanticType) Field {
	return Field{Name: name, Type: t, Required: true, Key: KeyNaturalPart}
}

func auto(name string) Field {
	return Field{Name: name, Type: TypeInteger, Key: KeyAuto}
}

func str(name string, maxLen int) Field {
	return Field{Name: name, Type: TypeString, MaxLen: maxLen}
}

func schemaDef(family, table string, mode LoadMode, fields ...Field) *Schema {
	return &Schema{Family: family, Table: table, Mode: mode, Fields: fields}
}

// DefaultRegistry builds the registry of every canonical schema.
func DefaultRegistry() *Registry {
	return NewRegistry([]*Schema{
		// Insider transactions (Forms 3/4/5). Append-only; detail tables keep
		// duplicates across amended filings, distinguished by accession number
		// plus the intra-filing sequence key.
		schemaDef(FamilyInsider, "insider_submissions", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			req("filing_date", TypeDate),
			fld("period_of_report", TypeDate),
			fld("date_of_orig_sub", TypeDate),
			str("document_type", 16),
			req("issuer_cik", TypeString),
			str("issuer_name", 150),
			str("issuer_trading_symbol", 12),
		),
		schemaDef(FamilyInsider, "insider_reporting_owners", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("rptowner_cik", TypeString),
			str("rptowner_name", 150),
			str("rptowner_relationship", 60),
			str("rptowner_street1", 120),
			str("rptowner_city", 60),
			str("rptowner_state", 10),
		),
		schemaDef(FamilyInsider, "insider_nonderiv_transactions", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("nonderiv_trans_sk", TypeInteger),
			str("security_title", 120),
			fld("trans_date", TypeDate),
			str("trans_code", 4),
			fld("trans_shares", TypeFloat),
			fld("trans_price_per_share", TypeFloat),
			str("trans_acquired_disp_code", 2),
			fld("shrs_ownd_folwng_trans", TypeFloat),
			str("direct_indirect_ownership", 2),
		),
		schemaDef(FamilyInsider, "insider_nonderiv_holdings", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("nonderiv_holding_sk", TypeInteger),
			str("security_title", 120),
			fld("shrs_ownd_folwng_trans", TypeFloat),
			str("direct_indirect_ownership", 2),
		),
		schemaDef(FamilyInsider, "insider_deriv_transactions", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("deriv_trans_sk", TypeInteger),
			str("security_title", 120),
			fld("conv_exercise_price", TypeFloat),
			fld("trans_date", TypeDate),
			str("trans_code", 4),
			fld("trans_shares", TypeFloat),
			fld("exercise_date", TypeDate),
			fld("expiration_date", TypeDate),
			str("underlying_security_title", 120),
			fld("underlying_security_shares", TypeFloat),
		),
		schemaDef(FamilyInsider, "insider_deriv_holdings", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("deriv_holding_sk", TypeInteger),
			str("security_title", 120),
			fld("conv_exercise_price", TypeFloat),
			fld("exercise_date", TypeDate),
			fld("expiration_date", TypeDate),
		),
		schemaDef(FamilyInsider, "insider_footnotes", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("footnote_id", TypeString),
			fld("footnote_text", TypeText),
		),
		schemaDef(FamilyInsider, "insider_owner_signatures", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			str("owner_signature_name", 150),
			fld("owner_signature_date", TypeDate),
		),

		// Form 13F institutional holdings.
		schemaDef(FamilyForm13F, "form13f_submissions", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			req("filing_date", TypeDate),
			str("submission_type", 16),
			req("cik", TypeString),
			fld("period_of_report", TypeDate),
			fld("report_calendar_or_quarter", TypeDate),
		),
		schemaDef(FamilyForm13F, "form13f_cover_pages", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			fld("report_calendar_or_quarter", TypeDate),
			fld("is_amendment", TypeBoolean),
			fld("amendment_no", TypeInteger),
			str("amendment_type", 20),
			str("filing_manager_name", 150),
			str("filing_manager_city", 60),
			str("filing_manager_state_or_country", 10),
			str("report_type", 40),
			str("form13f_file_number", 20),
		),
		schemaDef(FamilyForm13F, "form13f_other_managers", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("other_manager_sk", TypeInteger),
			str("cik", 10),
			str("form13f_file_number", 20),
			str("name", 150),
		),
		schemaDef(FamilyForm13F, "form13f_signatures", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			str("name", 150),
			str("title", 60),
			str("phone", 20),
			str("signature", 150),
			str("city", 60),
			str("state_or_country", 10),
			fld("signature_date", TypeDate),
		),
		schemaDef(FamilyForm13F, "form13f_summary_pages", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			fld("other_included_managers_count", TypeInteger),
			fld("table_entry_total", TypeInteger),
			fld("table_value_total", TypeFloat),
			fld("is_confidential_omitted", TypeBoolean),
		),
		schemaDef(FamilyForm13F, "form13f_other_managers2", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("sequence_number", TypeInteger),
			str("cik", 10),
			str("form13f_file_number", 20),
			str("name", 150),
		),
		schemaDef(FamilyForm13F, "form13f_info_tables", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("infotable_sk", TypeInteger),
			str("name_of_issuer", 200),
			str("title_of_class", 150),
			str("cusip", 9),
			fld("value", TypeFloat),
			fld("shares_or_principal_amount", TypeFloat),
			str("shares_or_principal_type", 10),
			str("put_call", 10),
			str("investment_discretion", 10),
			str("other_manager", 100),
			fld("voting_auth_sole", TypeInteger),
			fld("voting_auth_shared", TypeInteger),
			fld("voting_auth_none", TypeInteger),
		),

		// N-PORT monthly fund portfolio reports.
		schemaDef(FamilyNPORT, "nport_submissions", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			fld("filing_date", TypeDate),
			str("submission_type", 16),
			req("cik", TypeString),
			fld("report_period_end", TypeDate),
		),
		schemaDef(FamilyNPORT, "nport_general_info", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			str("registrant_name", 150),
			str("series_id", 12),
			str("series_name", 150),
			fld("total_assets", TypeFloat),
			fld("total_liabilities", TypeFloat),
			fld("net_assets", TypeFloat),
		),
		schemaDef(FamilyNPORT, "nport_holdings", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("holding_sk", TypeInteger),
			str("issuer_name", 200),
			str("lei", 20),
			str("title", 200),
			str("cusip", 9),
			fld("balance", TypeFloat),
			str("units", 20),
			str("currency", 3),
			fld("value_usd", TypeFloat),
			fld("percentage_of_net_assets", TypeFloat),
			str("asset_category", 10),
			fld("is_restricted_security", TypeBoolean),
			str("fair_value_level", 4),
		),
		schemaDef(FamilyNPORT, "nport_derivatives", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("derivative_sk", TypeInteger),
			str("counterparty_name", 200),
			str("counterparty_lei", 20),
			str("derivative_category", 10),
			fld("notional_amount", TypeFloat),
			str("currency", 3),
			fld("unrealized_appreciation", TypeFloat),
			fld("termination_date", TypeDate),
			fld("delta", TypeFloat),
		),

		// N-MFP money market fund census.
		schemaDef(FamilyNMFP, "nmfp_submissions", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			fld("filing_date", TypeDate),
			str("submission_type", 16),
			req("cik", TypeString),
			fld("report_date", TypeDate),
			str("series_id", 12),
			fld("total_share_classes_in_series", TypeInteger),
			fld("final_filing_flag", TypeBoolean),
		),
		schemaDef(FamilyNMFP, "nmfp_funds", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			str("cik", 10),
			str("registrant_name", 150),
			str("registrant_lei", 20),
			str("series_id", 12),
		),
		schemaDef(FamilyNMFP, "nmfp_series_level_info", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			fld("feeder_fund_flag", TypeBoolean),
			fld("master_fund_flag", TypeBoolean),
			str("money_market_fund_category", 40),
			fld("average_portfolio_maturity", TypeInteger),
			fld("average_life_maturity", TypeInteger),
			fld("total_value_other_assets", TypeFloat),
			fld("total_value_liabilities", TypeFloat),
			fld("net_asset_of_series", TypeFloat),
			fld("seven_day_gross_yield", TypeFloat),
		),
		schemaDef(FamilyNMFP, "nmfp_advisers", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			str("adviser_name", 150),
			str("adviser_file_number", 20),
		),
		schemaDef(FamilyNMFP, "nmfp_administrators", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			str("administrator_name", 150),
		),
		schemaDef(FamilyNMFP, "nmfp_transfer_agents", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			str("transfer_agent_name", 150),
			str("transfer_agent_cik", 10),
			str("transfer_agent_file_number", 20),
		),

		// Form D offering notices (quarter packages).
		schemaDef(FamilyFormD, "formd_submissions", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			str("file_num", 20),
			fld("filing_date", TypeDate),
			str("sic_code", 8),
			str("submission_type", 10),
			fld("over100_persons_flag", TypeBoolean),
			fld("over100_issuer_flag", TypeBoolean),
		),
		schemaDef(FamilyFormD, "formd_issuers", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("issuer_seq_key", TypeInteger),
			str("cik", 10),
			str("entity_name", 150),
			str("street1", 120),
			str("city", 60),
			str("state_or_country", 10),
			str("zip_code", 10),
			str("entity_type", 60),
			str("year_of_inc_value", 10),
		),
		schemaDef(FamilyFormD, "formd_offerings", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			str("industry_group_type", 60),
			str("investment_fund_type", 60),
			fld("is_40_act", TypeBoolean),
			str("revenue_range", 40),
			str("federal_exemptions", 100),
			fld("date_of_first_sale", TypeDate),
			fld("more_than_one_year_flag", TypeBoolean),
			fld("total_offering_amount", TypeFloat),
			fld("total_amount_sold", TypeFloat),
			fld("total_remaining", TypeFloat),
			fld("sales_amt_estimate_flag", TypeBoolean),
		),
		schemaDef(FamilyFormD, "formd_recipients", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("recipient_seq_key", TypeInteger),
			str("recipient_name", 150),
			str("recipient_crd_number", 15),
			str("associated_bd_name", 150),
			str("associated_bd_crd_number", 15),
			str("states_of_solicitation", 200),
		),
		schemaDef(FamilyFormD, "formd_related_persons", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("related_person_seq_key", TypeInteger),
			str("first_name", 60),
			str("last_name", 60),
			str("street1", 120),
			str("city", 60),
			str("state_or_country", 10),
			str("relationship", 60),
			fld("relationship_clarification", TypeText),
		),
		schemaDef(FamilyFormD, "formd_signatures", LoadAppend,
			auto("id"),
			nk("accession_number", TypeString),
			nk("signature_seq_key", TypeInteger),
			str("issuer_name", 150),
			str("signature_name", 150),
			str("name_of_signer", 150),
			str("signature_title", 60),
			fld("signature_date", TypeDate),
		),

		// Exchange trading metrics. Every CSV member routes here.
		schemaDef(FamilyExchange, "exchange_metrics", LoadAppend,
			auto("id"),
			nk("date", TypeDate),
			nk("ticker", TypeString),
			str("security", 150),
			fld("mcap_rank", TypeInteger),
			fld("turn_rank", TypeInteger),
			fld("volatility_rank", TypeInteger),
			fld("price_rank", TypeInteger),
			fld("cancels", TypeInteger),
			fld("trades", TypeInteger),
			fld("lit_trades", TypeInteger),
			fld("odd_lots", TypeInteger),
			fld("hidden", TypeInteger),
			fld("trades_for_hidden", TypeInteger),
			fld("order_vol", TypeFloat),
			fld("trade_vol", TypeFloat),
			fld("lit_vol", TypeFloat),
			fld("odd_lot_vol", TypeFloat),
			fld("hidden_vol", TypeFloat),
			fld("trade_vol_for_hidden", TypeFloat),
		),

		// CFTC swap registries. Small reference directories, merged by LEI;
		// re-loading a registry refreshes the stored rows in place.
		schemaDef(FamilySwapReg, "swap_dealers", LoadUpsert,
			auto("id"),
			nk("lei", TypeString),
			req("name", TypeString),
			str("registration_status", 30),
			fld("registration_date", TypeDate),
			str("address", 200),
			str("city", 60),
			str("state", 10),
			str("country", 40),
		),
		schemaDef(FamilySwapReg, "swap_execution_facilities", LoadUpsert,
			auto("id"),
			nk("lei", TypeString),
			req("name", TypeString),
			str("registration_status", 30),
			fld("registration_date", TypeDate),
			str("products_offered", 200),
			str("city", 60),
			str("country", 40),
		),
		schemaDef(FamilySwapReg, "swap_data_repositories", LoadUpsert,
			auto("id"),
			nk("lei", TypeString),
			req("name", TypeString),
			str("registration_status", 30),
			fld("registration_date", TypeDate),
			str("asset_classes", 200),
			str("city", 60),
			str("country", 40),
		),
	})
}
