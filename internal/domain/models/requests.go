package models

// DaysRequest bounds the lookback window for DONKI event queries.
// A missing or zero value falls back to the 7-day default before
// validation runs.
type DaysRequest struct {
	Days int `query:"days" default:"7" validate:"min=1,max=30"`
}

// NEODaysRequest bounds the NEO feed window; the upstream feed caps the
// range at 7 days.
type NEODaysRequest struct {
	Days int `query:"days" default:"7" validate:"min=1,max=7"`
}
