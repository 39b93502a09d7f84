package constants

// Provider auth headers
const (
	HeaderAuthKey  = "authkey"
	HeaderAuthPass = "authpass"
)

// SentinelNone is the literal the provider expects in optional query
// parameters. Blank optional parameters fail the provider's field
// validation, so absent values are sent as NONE, never as empty strings.
const SentinelNone = "NONE"

// Provider status tokens classified as successful. SUCCESS comes from the
// JSON recharge API; TXN, SAC and RCS are BBPS XML acknowledgement codes
// (transaction done, accepted for processing, request completed).
const (
	StatusSuccess = "SUCCESS"
	StatusTxn     = "TXN"
	StatusSac     = "SAC"
	StatusRcs     = "RCS"

	// StatusIAC paired with an "Unauthorised access" description means the
	// merchant credentials or source IP were rejected, not the transaction.
	StatusIAC = "IAC"
)

// Status field aliases probed in order on a decoded provider response
var StatusFieldAliases = []string{"responseStatus", "ResponseStatus"}

// Description field aliases probed in order
var DescriptionFieldAliases = []string{"description", "Description"}

// Service type codes
const (
	ServiceTypeRecharge    = "MR"
	ServiceTypeElectricity = "EB"
)

// NSQ topics
const (
	TopicTransactionAudit = "transaction.audit"
)
