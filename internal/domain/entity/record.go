// Package entity defines the core business entities for the domain layer.
package entity

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// RecordType represents the direction of a finance record (inflow or outflow).
type RecordType string

const (
	RecordTypeEntrada RecordType = "entrada"
	RecordTypeSaida   RecordType = "saida"
)

// Classification represents the optional bookkeeping classification of a record.
type Classification string

const (
	ClassificationFixo        Classification = "fixo"
	ClassificationVariavel    Classification = "variavel"
	ClassificationRecorrente  Classification = "recorrente"
	ClassificationAjusteSaldo Classification = "ajuste_saldo"
)

// RecurrenceInterval represents the calendar interval between occurrences of a
// recurring record.
type RecurrenceInterval string

const (
	IntervalSemanal    RecurrenceInterval = "semanal"
	IntervalMensal     RecurrenceInterval = "mensal"
	IntervalTrimestral RecurrenceInterval = "trimestral"
	IntervalSemestral  RecurrenceInterval = "semestral"
	IntervalAnual      RecurrenceInterval = "anual"
)

// RecurrenceDuration represents the duration policy of a recurring series.
// Indeterminado means the series is open-ended and is materialized in batches.
type RecurrenceDuration string

const (
	DurationTresMeses     RecurrenceDuration = "3_meses"
	DurationSeisMeses     RecurrenceDuration = "6_meses"
	DurationDozeMeses     RecurrenceDuration = "12_meses"
	DurationIndeterminado RecurrenceDuration = "indeterminado"
)

// Record represents a single financial transaction.
//
// TransactionDate carries date-only semantics: it is normalized to UTC midnight
// so that day comparisons behave the same across environments. IsFuture is a
// cached derived value (TransactionDate strictly after "today" at last sync),
// never a source of truth; it is re-derivable at any time from the date alone.
type Record struct {
	ID              uuid.UUID
	UserID          uuid.UUID
	Amount          decimal.Decimal // Always positive; direction comes from Type
	Type            RecordType
	Category        string
	Source          string // Counterparty "de"
	Destination     string // Counterparty "para"
	Classification  *Classification
	TransactionDate time.Time

	// Recurrence fields, present only on records generated by the recurrence
	// engine. RecurrenceGroupID is shared by every occurrence of one series;
	// if it is set, RecurrenceInterval must also be set.
	RecurrenceGroupID  *uuid.UUID
	RecurrenceInterval *RecurrenceInterval
	IsInfinite         bool
	IsFuture           bool

	CreatedAt time.Time
	UpdatedAt time.Time
}

// NewRecord creates a new Record entity.
func NewRecord(
	userID uuid.UUID,
	amount decimal.Decimal,
	recordType RecordType,
	category string,
	source string,
	destination string,
	classification *Classification,
	transactionDate time.Time,
) *Record {
	now := time.Now().UTC()

	return &Record{
		ID:              uuid.New(),
		UserID:          userID,
		Amount:          amount,
		Type:            recordType,
		Category:        category,
		Source:          source,
		Destination:     destination,
		Classification:  classification,
		TransactionDate: transactionDate,
		CreatedAt:       now,
		UpdatedAt:       now,
	}
}

// IsValidRecordType reports whether the given type is a known record direction.
func IsValidRecordType(recordType RecordType) bool {
	return recordType == RecordTypeEntrada || recordType == RecordTypeSaida
}

// IsValidClassification reports whether the given classification is known.
func IsValidClassification(classification Classification) bool {
	switch classification {
	case ClassificationFixo, ClassificationVariavel, ClassificationRecorrente, ClassificationAjusteSaldo:
		return true
	}
	return false
}
