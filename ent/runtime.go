// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/abelsk/learnpulse/ent/curvesummary"
	"github.com/abelsk/learnpulse/ent/performancerow"
	"github.com/abelsk/learnpulse/ent/reportrecord"
	"github.com/abelsk/learnpulse/ent/schema"
	"github.com/abelsk/learnpulse/ent/seriespoint"
	"github.com/abelsk/learnpulse/ent/submissionevent"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	curvesummaryFields := schema.CurveSummary{}.Fields()
	_ = curvesummaryFields
	// curvesummaryDescUserID is the schema descriptor for user_id field.
	curvesummaryDescUserID := curvesummaryFields[0].Descriptor()
	// curvesummary.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	curvesummary.UserIDValidator = curvesummaryDescUserID.Validators[0].(func(string) error)
	// curvesummaryDescEasingLabel is the schema descriptor for easing_label field.
	curvesummaryDescEasingLabel := curvesummaryFields[1].Descriptor()
	// curvesummary.EasingLabelValidator is a validator for the "easing_label" field. It is called by the builders before save.
	curvesummary.EasingLabelValidator = curvesummaryDescEasingLabel.Validators[0].(func(string) error)
	// curvesummaryDescFrontloadIndex is the schema descriptor for frontload_index field.
	curvesummaryDescFrontloadIndex := curvesummaryFields[2].Descriptor()
	// curvesummary.DefaultFrontloadIndex holds the default value on creation for the frontload_index field.
	curvesummary.DefaultFrontloadIndex = curvesummaryDescFrontloadIndex.Default.(float64)
	// curvesummaryDescConsistency is the schema descriptor for consistency field.
	curvesummaryDescConsistency := curvesummaryFields[3].Descriptor()
	// curvesummary.DefaultConsistency holds the default value on creation for the consistency field.
	curvesummary.DefaultConsistency = curvesummaryDescConsistency.Default.(float64)
	// curvesummaryDescBurstiness is the schema descriptor for burstiness field.
	curvesummaryDescBurstiness := curvesummaryFields[4].Descriptor()
	// curvesummary.DefaultBurstiness holds the default value on creation for the burstiness field.
	curvesummary.DefaultBurstiness = curvesummaryDescBurstiness.Default.(float64)
	// curvesummaryDescT25 is the schema descriptor for t25 field.
	curvesummaryDescT25 := curvesummaryFields[5].Descriptor()
	// curvesummary.DefaultT25 holds the default value on creation for the t25 field.
	curvesummary.DefaultT25 = curvesummaryDescT25.Default.(float64)
	// curvesummaryDescT50 is the schema descriptor for t50 field.
	curvesummaryDescT50 := curvesummaryFields[6].Descriptor()
	// curvesummary.DefaultT50 holds the default value on creation for the t50 field.
	curvesummary.DefaultT50 = curvesummaryDescT50.Default.(float64)
	// curvesummaryDescT75 is the schema descriptor for t75 field.
	curvesummaryDescT75 := curvesummaryFields[7].Descriptor()
	// curvesummary.DefaultT75 holds the default value on creation for the t75 field.
	curvesummary.DefaultT75 = curvesummaryDescT75.Default.(float64)
	performancerowFields := schema.PerformanceRow{}.Fields()
	_ = performancerowFields
	// performancerowDescUserID is the schema descriptor for user_id field.
	performancerowDescUserID := performancerowFields[0].Descriptor()
	// performancerow.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	performancerow.UserIDValidator = performancerowDescUserID.Validators[0].(func(string) error)
	// performancerowDescSegment is the schema descriptor for segment field.
	performancerowDescSegment := performancerowFields[1].Descriptor()
	// performancerow.DefaultSegment holds the default value on creation for the segment field.
	performancerow.DefaultSegment = performancerowDescSegment.Default.(string)
	// performancerowDescConsistencyIndex is the schema descriptor for consistency_index field.
	performancerowDescConsistencyIndex := performancerowFields[4].Descriptor()
	// performancerow.DefaultConsistencyIndex holds the default value on creation for the consistency_index field.
	performancerow.DefaultConsistencyIndex = performancerowDescConsistencyIndex.Default.(float64)
	// performancerowDescStruggleIndex is the schema descriptor for struggle_index field.
	performancerowDescStruggleIndex := performancerowFields[5].Descriptor()
	// performancerow.DefaultStruggleIndex holds the default value on creation for the struggle_index field.
	performancerow.DefaultStruggleIndex = performancerowDescStruggleIndex.Default.(float64)
	// performancerowDescEffortIndex is the schema descriptor for effort_index field.
	performancerowDescEffortIndex := performancerowFields[6].Descriptor()
	// performancerow.DefaultEffortIndex holds the default value on creation for the effort_index field.
	performancerow.DefaultEffortIndex = performancerowDescEffortIndex.Default.(float64)
	// performancerowDescActiveDaysRatio is the schema descriptor for active_days_ratio field.
	performancerowDescActiveDaysRatio := performancerowFields[7].Descriptor()
	// performancerow.DefaultActiveDaysRatio holds the default value on creation for the active_days_ratio field.
	performancerow.DefaultActiveDaysRatio = performancerowDescActiveDaysRatio.Default.(float64)
	// performancerowDescMeetingsAttendedPct is the schema descriptor for meetings_attended_pct field.
	performancerowDescMeetingsAttendedPct := performancerowFields[8].Descriptor()
	// performancerow.DefaultMeetingsAttendedPct holds the default value on creation for the meetings_attended_pct field.
	performancerow.DefaultMeetingsAttendedPct = performancerowDescMeetingsAttendedPct.Default.(float64)
	reportrecordFields := schema.ReportRecord{}.Fields()
	_ = reportrecordFields
	// reportrecordDescReportID is the schema descriptor for report_id field.
	reportrecordDescReportID := reportrecordFields[0].Descriptor()
	// reportrecord.ReportIDValidator is a validator for the "report_id" field. It is called by the builders before save.
	reportrecord.ReportIDValidator = reportrecordDescReportID.Validators[0].(func(string) error)
	// reportrecordDescUserID is the schema descriptor for user_id field.
	reportrecordDescUserID := reportrecordFields[1].Descriptor()
	// reportrecord.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	reportrecord.UserIDValidator = reportrecordDescUserID.Validators[0].(func(string) error)
	// reportrecordDescGeneratedAt is the schema descriptor for generated_at field.
	reportrecordDescGeneratedAt := reportrecordFields[2].Descriptor()
	// reportrecord.DefaultGeneratedAt holds the default value on creation for the generated_at field.
	reportrecord.DefaultGeneratedAt = reportrecordDescGeneratedAt.Default.(func() time.Time)
	seriespointFields := schema.SeriesPoint{}.Fields()
	_ = seriespointFields
	// seriespointDescUserID is the schema descriptor for user_id field.
	seriespointDescUserID := seriespointFields[0].Descriptor()
	// seriespoint.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	seriespoint.UserIDValidator = seriespointDescUserID.Validators[0].(func(string) error)
	// seriespointDescDateIso is the schema descriptor for date_iso field.
	seriespointDescDateIso := seriespointFields[1].Descriptor()
	// seriespoint.DateIsoValidator is a validator for the "date_iso" field. It is called by the builders before save.
	seriespoint.DateIsoValidator = seriespointDescDateIso.Validators[0].(func(string) error)
	submissioneventMixin := schema.SubmissionEvent{}.Mixin()
	submissioneventMixinFields0 := submissioneventMixin[0].Fields()
	_ = submissioneventMixinFields0
	submissioneventFields := schema.SubmissionEvent{}.Fields()
	_ = submissioneventFields
	// submissioneventDescIngestedAt is the schema descriptor for ingested_at field.
	submissioneventDescIngestedAt := submissioneventMixinFields0[1].Descriptor()
	// submissionevent.DefaultIngestedAt holds the default value on creation for the ingested_at field.
	submissionevent.DefaultIngestedAt = submissioneventDescIngestedAt.Default.(func() time.Time)
	// submissioneventDescUserID is the schema descriptor for user_id field.
	submissioneventDescUserID := submissioneventFields[0].Descriptor()
	// submissionevent.UserIDValidator is a validator for the "user_id" field. It is called by the builders before save.
	submissionevent.UserIDValidator = submissioneventDescUserID.Validators[0].(func(string) error)
}
