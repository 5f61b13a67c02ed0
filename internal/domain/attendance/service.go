package attendance

// AggregatorService defines the reduction from daily records to monthly totals
type AggregatorService interface {
	// Aggregate sums the hour fields across all records into one Totals.
	// Empty input yields an all-zero result; unset hour fields count as zero.
	Aggregate(days []DayRecord) Totals
}
