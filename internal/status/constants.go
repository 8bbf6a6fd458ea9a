// internal/status/constants.go
package status

// Export status layout constants.
// These values define the exit-code contract and MUST NOT be configurable.

// ---- HEALTH CODES ----

// HealthUnknown represents a run that has not finished.
const HealthUnknown uint16 = 0

// HealthOK represents a run that exported a fully valid observation set.
const HealthOK uint16 = 1

// HealthError represents a run that failed.
const HealthError uint16 = 2

// ---- ERROR CODES ----
// Error codes double as process exit codes.

// CodeOK means no error.
const CodeOK uint16 = 0

// CodeGeneric is used for errors that do not expose a code.
const CodeGeneric uint16 = 1

// CodeInvalidUser: user slot not in {1, 2}.
const CodeInvalidUser uint16 = 2

// CodeFieldValidation: a decoded field was non-numeric or out of range.
const CodeFieldValidation uint16 = 3

// CodeTruncatedRecord: the response ended inside a record.
const CodeTruncatedRecord uint16 = 4

// CodeNegativeAcknowledgement: the device answered NAK.
const CodeNegativeAcknowledgement uint16 = 5

// CodeUnexpectedAcknowledgement: the device answered neither ACK nor NAK.
const CodeUnexpectedAcknowledgement uint16 = 6

// CodeTransport: serial open/read/write failure.
const CodeTransport uint16 = 7

// CodeCountMismatch: declared and decoded observation counts differ.
const CodeCountMismatch uint16 = 8

// CodeNoObservations: the device holds no observations for the user.
const CodeNoObservations uint16 = 9

// CodeConfig: configuration could not be loaded or is invalid.
const CodeConfig uint16 = 10

// CodeOutput: the CSV or status output could not be written.
const CodeOutput uint16 = 11
