// Code generated by ent, DO NOT EDIT.

package upscalejob

import (
	"time"

	"entgo.io/ent/dialect/sql"
	"entgo.io/ent/dialect/sql/sqlgraph"
	"github.com/pixelrelay/upscaled/ent/predicate"
)

// ID filters vertices based on their ID field.
func ID(id string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldID, id))
}

// IDEQ applies the EQ predicate on the ID field.
func IDEQ(id string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldID, id))
}

// IDNEQ applies the NEQ predicate on the ID field.
func IDNEQ(id string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldID, id))
}

// IDIn applies the In predicate on the ID field.
func IDIn(ids ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldID, ids...))
}

// IDNotIn applies the NotIn predicate on the ID field.
func IDNotIn(ids ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldID, ids...))
}

// IDGT applies the GT predicate on the ID field.
func IDGT(id string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldID, id))
}

// IDGTE applies the GTE predicate on the ID field.
func IDGTE(id string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldID, id))
}

// IDLT applies the LT predicate on the ID field.
func IDLT(id string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldID, id))
}

// IDLTE applies the LTE predicate on the ID field.
func IDLTE(id string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldID, id))
}

// IDEqualFold applies the EqualFold predicate on the ID field.
func IDEqualFold(id string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEqualFold(FieldID, id))
}

// IDContainsFold applies the ContainsFold predicate on the ID field.
func IDContainsFold(id string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldContainsFold(FieldID, id))
}

// UserID applies equality check predicate on the "user_id" field. It's identical to UserIDEQ.
func UserID(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldUserID, v))
}

// InputURL applies equality check predicate on the "input_url" field. It's identical to InputURLEQ.
func InputURL(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldInputURL, v))
}

// OriginalWidth applies equality check predicate on the "original_width" field. It's identical to OriginalWidthEQ.
func OriginalWidth(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldOriginalWidth, v))
}

// OriginalHeight applies equality check predicate on the "original_height" field. It's identical to OriginalHeightEQ.
func OriginalHeight(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldOriginalHeight, v))
}

// RequestedScale applies equality check predicate on the "requested_scale" field. It's identical to RequestedScaleEQ.
func RequestedScale(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldRequestedScale, v))
}

// TargetScale applies equality check predicate on the "target_scale" field. It's identical to TargetScaleEQ.
func TargetScale(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldTargetScale, v))
}

// UsingTiling applies equality check predicate on the "using_tiling" field. It's identical to UsingTilingEQ.
func UsingTiling(v bool) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldUsingTiling, v))
}

// CurrentStage applies equality check predicate on the "current_stage" field. It's identical to CurrentStageEQ.
func CurrentStage(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldCurrentStage, v))
}

// TotalStages applies equality check predicate on the "total_stages" field. It's identical to TotalStagesEQ.
func TotalStages(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldTotalStages, v))
}

// PredictionID applies equality check predicate on the "prediction_id" field. It's identical to PredictionIDEQ.
func PredictionID(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldPredictionID, v))
}

// RetryCount applies equality check predicate on the "retry_count" field. It's identical to RetryCountEQ.
func RetryCount(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldRetryCount, v))
}

// LastCallbackAt applies equality check predicate on the "last_callback_at" field. It's identical to LastCallbackAtEQ.
func LastCallbackAt(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldLastCallbackAt, v))
}

// CurrentOutputURL applies equality check predicate on the "current_output_url" field. It's identical to CurrentOutputURLEQ.
func CurrentOutputURL(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldCurrentOutputURL, v))
}

// FinalOutputURL applies equality check predicate on the "final_output_url" field. It's identical to FinalOutputURLEQ.
func FinalOutputURL(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldFinalOutputURL, v))
}

// ErrorMessage applies equality check predicate on the "error_message" field. It's identical to ErrorMessageEQ.
func ErrorMessage(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldErrorMessage, v))
}

// CreatedAt applies equality check predicate on the "created_at" field. It's identical to CreatedAtEQ.
func CreatedAt(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CompletedAt applies equality check predicate on the "completed_at" field. It's identical to CompletedAtEQ.
func CompletedAt(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldCompletedAt, v))
}

// UserIDEQ applies the EQ predicate on the "user_id" field.
func UserIDEQ(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldUserID, v))
}

// UserIDNEQ applies the NEQ predicate on the "user_id" field.
func UserIDNEQ(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldUserID, v))
}

// UserIDIn applies the In predicate on the "user_id" field.
func UserIDIn(vs ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldUserID, vs...))
}

// UserIDNotIn applies the NotIn predicate on the "user_id" field.
func UserIDNotIn(vs ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldUserID, vs...))
}

// UserIDGT applies the GT predicate on the "user_id" field.
func UserIDGT(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldUserID, v))
}

// UserIDGTE applies the GTE predicate on the "user_id" field.
func UserIDGTE(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldUserID, v))
}

// UserIDLT applies the LT predicate on the "user_id" field.
func UserIDLT(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldUserID, v))
}

// UserIDLTE applies the LTE predicate on the "user_id" field.
func UserIDLTE(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldUserID, v))
}

// UserIDContains applies the Contains predicate on the "user_id" field.
func UserIDContains(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldContains(FieldUserID, v))
}

// UserIDHasPrefix applies the HasPrefix predicate on the "user_id" field.
func UserIDHasPrefix(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldHasPrefix(FieldUserID, v))
}

// UserIDHasSuffix applies the HasSuffix predicate on the "user_id" field.
func UserIDHasSuffix(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldHasSuffix(FieldUserID, v))
}

// UserIDEqualFold applies the EqualFold predicate on the "user_id" field.
func UserIDEqualFold(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEqualFold(FieldUserID, v))
}

// UserIDContainsFold applies the ContainsFold predicate on the "user_id" field.
func UserIDContainsFold(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldContainsFold(FieldUserID, v))
}

// InputURLEQ applies the EQ predicate on the "input_url" field.
func InputURLEQ(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldInputURL, v))
}

// InputURLNEQ applies the NEQ predicate on the "input_url" field.
func InputURLNEQ(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldInputURL, v))
}

// InputURLIn applies the In predicate on the "input_url" field.
func InputURLIn(vs ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldInputURL, vs...))
}

// InputURLNotIn applies the NotIn predicate on the "input_url" field.
func InputURLNotIn(vs ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldInputURL, vs...))
}

// InputURLGT applies the GT predicate on the "input_url" field.
func InputURLGT(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldInputURL, v))
}

// InputURLGTE applies the GTE predicate on the "input_url" field.
func InputURLGTE(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldInputURL, v))
}

// InputURLLT applies the LT predicate on the "input_url" field.
func InputURLLT(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldInputURL, v))
}

// InputURLLTE applies the LTE predicate on the "input_url" field.
func InputURLLTE(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldInputURL, v))
}

// InputURLContains applies the Contains predicate on the "input_url" field.
func InputURLContains(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldContains(FieldInputURL, v))
}

// InputURLHasPrefix applies the HasPrefix predicate on the "input_url" field.
func InputURLHasPrefix(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldHasPrefix(FieldInputURL, v))
}

// InputURLHasSuffix applies the HasSuffix predicate on the "input_url" field.
func InputURLHasSuffix(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldHasSuffix(FieldInputURL, v))
}

// InputURLEqualFold applies the EqualFold predicate on the "input_url" field.
func InputURLEqualFold(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEqualFold(FieldInputURL, v))
}

// InputURLContainsFold applies the ContainsFold predicate on the "input_url" field.
func InputURLContainsFold(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldContainsFold(FieldInputURL, v))
}

// OriginalWidthEQ applies the EQ predicate on the "original_width" field.
func OriginalWidthEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldOriginalWidth, v))
}

// OriginalWidthNEQ applies the NEQ predicate on the "original_width" field.
func OriginalWidthNEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldOriginalWidth, v))
}

// OriginalWidthIn applies the In predicate on the "original_width" field.
func OriginalWidthIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldOriginalWidth, vs...))
}

// OriginalWidthNotIn applies the NotIn predicate on the "original_width" field.
func OriginalWidthNotIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldOriginalWidth, vs...))
}

// OriginalWidthGT applies the GT predicate on the "original_width" field.
func OriginalWidthGT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldOriginalWidth, v))
}

// OriginalWidthGTE applies the GTE predicate on the "original_width" field.
func OriginalWidthGTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldOriginalWidth, v))
}

// OriginalWidthLT applies the LT predicate on the "original_width" field.
func OriginalWidthLT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldOriginalWidth, v))
}

// OriginalWidthLTE applies the LTE predicate on the "original_width" field.
func OriginalWidthLTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldOriginalWidth, v))
}

// OriginalHeightEQ applies the EQ predicate on the "original_height" field.
func OriginalHeightEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldOriginalHeight, v))
}

// OriginalHeightNEQ applies the NEQ predicate on the "original_height" field.
func OriginalHeightNEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldOriginalHeight, v))
}

// OriginalHeightIn applies the In predicate on the "original_height" field.
func OriginalHeightIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldOriginalHeight, vs...))
}

// OriginalHeightNotIn applies the NotIn predicate on the "original_height" field.
func OriginalHeightNotIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldOriginalHeight, vs...))
}

// OriginalHeightGT applies the GT predicate on the "original_height" field.
func OriginalHeightGT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldOriginalHeight, v))
}

// OriginalHeightGTE applies the GTE predicate on the "original_height" field.
func OriginalHeightGTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldOriginalHeight, v))
}

// OriginalHeightLT applies the LT predicate on the "original_height" field.
func OriginalHeightLT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldOriginalHeight, v))
}

// OriginalHeightLTE applies the LTE predicate on the "original_height" field.
func OriginalHeightLTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldOriginalHeight, v))
}

// CategoryEQ applies the EQ predicate on the "category" field.
func CategoryEQ(v Category) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldCategory, v))
}

// CategoryNEQ applies the NEQ predicate on the "category" field.
func CategoryNEQ(v Category) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldCategory, v))
}

// CategoryIn applies the In predicate on the "category" field.
func CategoryIn(vs ...Category) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldCategory, vs...))
}

// CategoryNotIn applies the NotIn predicate on the "category" field.
func CategoryNotIn(vs ...Category) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldCategory, vs...))
}

// RequestedScaleEQ applies the EQ predicate on the "requested_scale" field.
func RequestedScaleEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldRequestedScale, v))
}

// RequestedScaleNEQ applies the NEQ predicate on the "requested_scale" field.
func RequestedScaleNEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldRequestedScale, v))
}

// RequestedScaleIn applies the In predicate on the "requested_scale" field.
func RequestedScaleIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldRequestedScale, vs...))
}

// RequestedScaleNotIn applies the NotIn predicate on the "requested_scale" field.
func RequestedScaleNotIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldRequestedScale, vs...))
}

// RequestedScaleGT applies the GT predicate on the "requested_scale" field.
func RequestedScaleGT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldRequestedScale, v))
}

// RequestedScaleGTE applies the GTE predicate on the "requested_scale" field.
func RequestedScaleGTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldRequestedScale, v))
}

// RequestedScaleLT applies the LT predicate on the "requested_scale" field.
func RequestedScaleLT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldRequestedScale, v))
}

// RequestedScaleLTE applies the LTE predicate on the "requested_scale" field.
func RequestedScaleLTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldRequestedScale, v))
}

// TargetScaleEQ applies the EQ predicate on the "target_scale" field.
func TargetScaleEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldTargetScale, v))
}

// TargetScaleNEQ applies the NEQ predicate on the "target_scale" field.
func TargetScaleNEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldTargetScale, v))
}

// TargetScaleIn applies the In predicate on the "target_scale" field.
func TargetScaleIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldTargetScale, vs...))
}

// TargetScaleNotIn applies the NotIn predicate on the "target_scale" field.
func TargetScaleNotIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldTargetScale, vs...))
}

// TargetScaleGT applies the GT predicate on the "target_scale" field.
func TargetScaleGT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldTargetScale, v))
}

// TargetScaleGTE applies the GTE predicate on the "target_scale" field.
func TargetScaleGTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldTargetScale, v))
}

// TargetScaleLT applies the LT predicate on the "target_scale" field.
func TargetScaleLT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldTargetScale, v))
}

// TargetScaleLTE applies the LTE predicate on the "target_scale" field.
func TargetScaleLTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldTargetScale, v))
}

// TemplateIsNil applies the IsNil predicate on the "template" field.
func TemplateIsNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIsNull(FieldTemplate))
}

// TemplateNotNil applies the NotNil predicate on the "template" field.
func TemplateNotNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotNull(FieldTemplate))
}

// GridIsNil applies the IsNil predicate on the "grid" field.
func GridIsNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIsNull(FieldGrid))
}

// GridNotNil applies the NotNil predicate on the "grid" field.
func GridNotNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotNull(FieldGrid))
}

// UsingTilingEQ applies the EQ predicate on the "using_tiling" field.
func UsingTilingEQ(v bool) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldUsingTiling, v))
}

// UsingTilingNEQ applies the NEQ predicate on the "using_tiling" field.
func UsingTilingNEQ(v bool) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldUsingTiling, v))
}

// CurrentStageEQ applies the EQ predicate on the "current_stage" field.
func CurrentStageEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldCurrentStage, v))
}

// CurrentStageNEQ applies the NEQ predicate on the "current_stage" field.
func CurrentStageNEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldCurrentStage, v))
}

// CurrentStageIn applies the In predicate on the "current_stage" field.
func CurrentStageIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldCurrentStage, vs...))
}

// CurrentStageNotIn applies the NotIn predicate on the "current_stage" field.
func CurrentStageNotIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldCurrentStage, vs...))
}

// CurrentStageGT applies the GT predicate on the "current_stage" field.
func CurrentStageGT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldCurrentStage, v))
}

// CurrentStageGTE applies the GTE predicate on the "current_stage" field.
func CurrentStageGTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldCurrentStage, v))
}

// CurrentStageLT applies the LT predicate on the "current_stage" field.
func CurrentStageLT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldCurrentStage, v))
}

// CurrentStageLTE applies the LTE predicate on the "current_stage" field.
func CurrentStageLTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldCurrentStage, v))
}

// TotalStagesEQ applies the EQ predicate on the "total_stages" field.
func TotalStagesEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldTotalStages, v))
}

// TotalStagesNEQ applies the NEQ predicate on the "total_stages" field.
func TotalStagesNEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldTotalStages, v))
}

// TotalStagesIn applies the In predicate on the "total_stages" field.
func TotalStagesIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldTotalStages, vs...))
}

// TotalStagesNotIn applies the NotIn predicate on the "total_stages" field.
func TotalStagesNotIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldTotalStages, vs...))
}

// TotalStagesGT applies the GT predicate on the "total_stages" field.
func TotalStagesGT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldTotalStages, v))
}

// TotalStagesGTE applies the GTE predicate on the "total_stages" field.
func TotalStagesGTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldTotalStages, v))
}

// TotalStagesLT applies the LT predicate on the "total_stages" field.
func TotalStagesLT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldTotalStages, v))
}

// TotalStagesLTE applies the LTE predicate on the "total_stages" field.
func TotalStagesLTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldTotalStages, v))
}

// PredictionIDEQ applies the EQ predicate on the "prediction_id" field.
func PredictionIDEQ(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldPredictionID, v))
}

// PredictionIDNEQ applies the NEQ predicate on the "prediction_id" field.
func PredictionIDNEQ(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldPredictionID, v))
}

// PredictionIDIn applies the In predicate on the "prediction_id" field.
func PredictionIDIn(vs ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldPredictionID, vs...))
}

// PredictionIDNotIn applies the NotIn predicate on the "prediction_id" field.
func PredictionIDNotIn(vs ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldPredictionID, vs...))
}

// PredictionIDGT applies the GT predicate on the "prediction_id" field.
func PredictionIDGT(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldPredictionID, v))
}

// PredictionIDGTE applies the GTE predicate on the "prediction_id" field.
func PredictionIDGTE(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldPredictionID, v))
}

// PredictionIDLT applies the LT predicate on the "prediction_id" field.
func PredictionIDLT(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldPredictionID, v))
}

// PredictionIDLTE applies the LTE predicate on the "prediction_id" field.
func PredictionIDLTE(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldPredictionID, v))
}

// PredictionIDContains applies the Contains predicate on the "prediction_id" field.
func PredictionIDContains(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldContains(FieldPredictionID, v))
}

// PredictionIDHasPrefix applies the HasPrefix predicate on the "prediction_id" field.
func PredictionIDHasPrefix(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldHasPrefix(FieldPredictionID, v))
}

// PredictionIDHasSuffix applies the HasSuffix predicate on the "prediction_id" field.
func PredictionIDHasSuffix(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldHasSuffix(FieldPredictionID, v))
}

// PredictionIDIsNil applies the IsNil predicate on the "prediction_id" field.
func PredictionIDIsNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIsNull(FieldPredictionID))
}

// PredictionIDNotNil applies the NotNil predicate on the "prediction_id" field.
func PredictionIDNotNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotNull(FieldPredictionID))
}

// PredictionIDEqualFold applies the EqualFold predicate on the "prediction_id" field.
func PredictionIDEqualFold(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEqualFold(FieldPredictionID, v))
}

// PredictionIDContainsFold applies the ContainsFold predicate on the "prediction_id" field.
func PredictionIDContainsFold(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldContainsFold(FieldPredictionID, v))
}

// StatusEQ applies the EQ predicate on the "status" field.
func StatusEQ(v Status) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldStatus, v))
}

// StatusNEQ applies the NEQ predicate on the "status" field.
func StatusNEQ(v Status) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldStatus, v))
}

// StatusIn applies the In predicate on the "status" field.
func StatusIn(vs ...Status) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldStatus, vs...))
}

// StatusNotIn applies the NotIn predicate on the "status" field.
func StatusNotIn(vs ...Status) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldStatus, vs...))
}

// RetryCountEQ applies the EQ predicate on the "retry_count" field.
func RetryCountEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldRetryCount, v))
}

// RetryCountNEQ applies the NEQ predicate on the "retry_count" field.
func RetryCountNEQ(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldRetryCount, v))
}

// RetryCountIn applies the In predicate on the "retry_count" field.
func RetryCountIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldRetryCount, vs...))
}

// RetryCountNotIn applies the NotIn predicate on the "retry_count" field.
func RetryCountNotIn(vs ...int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldRetryCount, vs...))
}

// RetryCountGT applies the GT predicate on the "retry_count" field.
func RetryCountGT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldRetryCount, v))
}

// RetryCountGTE applies the GTE predicate on the "retry_count" field.
func RetryCountGTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldRetryCount, v))
}

// RetryCountLT applies the LT predicate on the "retry_count" field.
func RetryCountLT(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldRetryCount, v))
}

// RetryCountLTE applies the LTE predicate on the "retry_count" field.
func RetryCountLTE(v int) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldRetryCount, v))
}

// LastCallbackAtEQ applies the EQ predicate on the "last_callback_at" field.
func LastCallbackAtEQ(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldLastCallbackAt, v))
}

// LastCallbackAtNEQ applies the NEQ predicate on the "last_callback_at" field.
func LastCallbackAtNEQ(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldLastCallbackAt, v))
}

// LastCallbackAtIn applies the In predicate on the "last_callback_at" field.
func LastCallbackAtIn(vs ...time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldLastCallbackAt, vs...))
}

// LastCallbackAtNotIn applies the NotIn predicate on the "last_callback_at" field.
func LastCallbackAtNotIn(vs ...time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldLastCallbackAt, vs...))
}

// LastCallbackAtGT applies the GT predicate on the "last_callback_at" field.
func LastCallbackAtGT(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldLastCallbackAt, v))
}

// LastCallbackAtGTE applies the GTE predicate on the "last_callback_at" field.
func LastCallbackAtGTE(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldLastCallbackAt, v))
}

// LastCallbackAtLT applies the LT predicate on the "last_callback_at" field.
func LastCallbackAtLT(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldLastCallbackAt, v))
}

// LastCallbackAtLTE applies the LTE predicate on the "last_callback_at" field.
func LastCallbackAtLTE(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldLastCallbackAt, v))
}

// LastCallbackAtIsNil applies the IsNil predicate on the "last_callback_at" field.
func LastCallbackAtIsNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIsNull(FieldLastCallbackAt))
}

// LastCallbackAtNotNil applies the NotNil predicate on the "last_callback_at" field.
func LastCallbackAtNotNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotNull(FieldLastCallbackAt))
}

// CurrentOutputURLEQ applies the EQ predicate on the "current_output_url" field.
func CurrentOutputURLEQ(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldCurrentOutputURL, v))
}

// CurrentOutputURLNEQ applies the NEQ predicate on the "current_output_url" field.
func CurrentOutputURLNEQ(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldCurrentOutputURL, v))
}

// CurrentOutputURLIn applies the In predicate on the "current_output_url" field.
func CurrentOutputURLIn(vs ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldCurrentOutputURL, vs...))
}

// CurrentOutputURLNotIn applies the NotIn predicate on the "current_output_url" field.
func CurrentOutputURLNotIn(vs ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldCurrentOutputURL, vs...))
}

// CurrentOutputURLGT applies the GT predicate on the "current_output_url" field.
func CurrentOutputURLGT(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldCurrentOutputURL, v))
}

// CurrentOutputURLGTE applies the GTE predicate on the "current_output_url" field.
func CurrentOutputURLGTE(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldCurrentOutputURL, v))
}

// CurrentOutputURLLT applies the LT predicate on the "current_output_url" field.
func CurrentOutputURLLT(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldCurrentOutputURL, v))
}

// CurrentOutputURLLTE applies the LTE predicate on the "current_output_url" field.
func CurrentOutputURLLTE(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldCurrentOutputURL, v))
}

// CurrentOutputURLContains applies the Contains predicate on the "current_output_url" field.
func CurrentOutputURLContains(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldContains(FieldCurrentOutputURL, v))
}

// CurrentOutputURLHasPrefix applies the HasPrefix predicate on the "current_output_url" field.
func CurrentOutputURLHasPrefix(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldHasPrefix(FieldCurrentOutputURL, v))
}

// CurrentOutputURLHasSuffix applies the HasSuffix predicate on the "current_output_url" field.
func CurrentOutputURLHasSuffix(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldHasSuffix(FieldCurrentOutputURL, v))
}

// CurrentOutputURLIsNil applies the IsNil predicate on the "current_output_url" field.
func CurrentOutputURLIsNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIsNull(FieldCurrentOutputURL))
}

// CurrentOutputURLNotNil applies the NotNil predicate on the "current_output_url" field.
func CurrentOutputURLNotNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotNull(FieldCurrentOutputURL))
}

// CurrentOutputURLEqualFold applies the EqualFold predicate on the "current_output_url" field.
func CurrentOutputURLEqualFold(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEqualFold(FieldCurrentOutputURL, v))
}

// CurrentOutputURLContainsFold applies the ContainsFold predicate on the "current_output_url" field.
func CurrentOutputURLContainsFold(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldContainsFold(FieldCurrentOutputURL, v))
}

// FinalOutputURLEQ applies the EQ predicate on the "final_output_url" field.
func FinalOutputURLEQ(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldFinalOutputURL, v))
}

// FinalOutputURLNEQ applies the NEQ predicate on the "final_output_url" field.
func FinalOutputURLNEQ(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldFinalOutputURL, v))
}

// FinalOutputURLIn applies the In predicate on the "final_output_url" field.
func FinalOutputURLIn(vs ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldFinalOutputURL, vs...))
}

// FinalOutputURLNotIn applies the NotIn predicate on the "final_output_url" field.
func FinalOutputURLNotIn(vs ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldFinalOutputURL, vs...))
}

// FinalOutputURLGT applies the GT predicate on the "final_output_url" field.
func FinalOutputURLGT(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldFinalOutputURL, v))
}

// FinalOutputURLGTE applies the GTE predicate on the "final_output_url" field.
func FinalOutputURLGTE(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldFinalOutputURL, v))
}

// FinalOutputURLLT applies the LT predicate on the "final_output_url" field.
func FinalOutputURLLT(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldFinalOutputURL, v))
}

// FinalOutputURLLTE applies the LTE predicate on the "final_output_url" field.
func FinalOutputURLLTE(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldFinalOutputURL, v))
}

// FinalOutputURLContains applies the Contains predicate on the "final_output_url" field.
func FinalOutputURLContains(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldContains(FieldFinalOutputURL, v))
}

// FinalOutputURLHasPrefix applies the HasPrefix predicate on the "final_output_url" field.
func FinalOutputURLHasPrefix(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldHasPrefix(FieldFinalOutputURL, v))
}

// FinalOutputURLHasSuffix applies the HasSuffix predicate on the "final_output_url" field.
func FinalOutputURLHasSuffix(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldHasSuffix(FieldFinalOutputURL, v))
}

// FinalOutputURLIsNil applies the IsNil predicate on the "final_output_url" field.
func FinalOutputURLIsNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIsNull(FieldFinalOutputURL))
}

// FinalOutputURLNotNil applies the NotNil predicate on the "final_output_url" field.
func FinalOutputURLNotNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotNull(FieldFinalOutputURL))
}

// FinalOutputURLEqualFold applies the EqualFold predicate on the "final_output_url" field.
func FinalOutputURLEqualFold(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEqualFold(FieldFinalOutputURL, v))
}

// FinalOutputURLContainsFold applies the ContainsFold predicate on the "final_output_url" field.
func FinalOutputURLContainsFold(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldContainsFold(FieldFinalOutputURL, v))
}

// ErrorMessageEQ applies the EQ predicate on the "error_message" field.
func ErrorMessageEQ(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldErrorMessage, v))
}

// ErrorMessageNEQ applies the NEQ predicate on the "error_message" field.
func ErrorMessageNEQ(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldErrorMessage, v))
}

// ErrorMessageIn applies the In predicate on the "error_message" field.
func ErrorMessageIn(vs ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldErrorMessage, vs...))
}

// ErrorMessageNotIn applies the NotIn predicate on the "error_message" field.
func ErrorMessageNotIn(vs ...string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldErrorMessage, vs...))
}

// ErrorMessageGT applies the GT predicate on the "error_message" field.
func ErrorMessageGT(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldErrorMessage, v))
}

// ErrorMessageGTE applies the GTE predicate on the "error_message" field.
func ErrorMessageGTE(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldErrorMessage, v))
}

// ErrorMessageLT applies the LT predicate on the "error_message" field.
func ErrorMessageLT(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldErrorMessage, v))
}

// ErrorMessageLTE applies the LTE predicate on the "error_message" field.
func ErrorMessageLTE(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldErrorMessage, v))
}

// ErrorMessageContains applies the Contains predicate on the "error_message" field.
func ErrorMessageContains(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldContains(FieldErrorMessage, v))
}

// ErrorMessageHasPrefix applies the HasPrefix predicate on the "error_message" field.
func ErrorMessageHasPrefix(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldHasPrefix(FieldErrorMessage, v))
}

// ErrorMessageHasSuffix applies the HasSuffix predicate on the "error_message" field.
func ErrorMessageHasSuffix(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldHasSuffix(FieldErrorMessage, v))
}

// ErrorMessageIsNil applies the IsNil predicate on the "error_message" field.
func ErrorMessageIsNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIsNull(FieldErrorMessage))
}

// ErrorMessageNotNil applies the NotNil predicate on the "error_message" field.
func ErrorMessageNotNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotNull(FieldErrorMessage))
}

// ErrorMessageEqualFold applies the EqualFold predicate on the "error_message" field.
func ErrorMessageEqualFold(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEqualFold(FieldErrorMessage, v))
}

// ErrorMessageContainsFold applies the ContainsFold predicate on the "error_message" field.
func ErrorMessageContainsFold(v string) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldContainsFold(FieldErrorMessage, v))
}

// CreatedAtEQ applies the EQ predicate on the "created_at" field.
func CreatedAtEQ(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldCreatedAt, v))
}

// CreatedAtNEQ applies the NEQ predicate on the "created_at" field.
func CreatedAtNEQ(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldCreatedAt, v))
}

// CreatedAtIn applies the In predicate on the "created_at" field.
func CreatedAtIn(vs ...time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldCreatedAt, vs...))
}

// CreatedAtNotIn applies the NotIn predicate on the "created_at" field.
func CreatedAtNotIn(vs ...time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldCreatedAt, vs...))
}

// CreatedAtGT applies the GT predicate on the "created_at" field.
func CreatedAtGT(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldCreatedAt, v))
}

// CreatedAtGTE applies the GTE predicate on the "created_at" field.
func CreatedAtGTE(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldCreatedAt, v))
}

// CreatedAtLT applies the LT predicate on the "created_at" field.
func CreatedAtLT(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldCreatedAt, v))
}

// CreatedAtLTE applies the LTE predicate on the "created_at" field.
func CreatedAtLTE(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldCreatedAt, v))
}

// CompletedAtEQ applies the EQ predicate on the "completed_at" field.
func CompletedAtEQ(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldEQ(FieldCompletedAt, v))
}

// CompletedAtNEQ applies the NEQ predicate on the "completed_at" field.
func CompletedAtNEQ(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNEQ(FieldCompletedAt, v))
}

// CompletedAtIn applies the In predicate on the "completed_at" field.
func CompletedAtIn(vs ...time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIn(FieldCompletedAt, vs...))
}

// CompletedAtNotIn applies the NotIn predicate on the "completed_at" field.
func CompletedAtNotIn(vs ...time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotIn(FieldCompletedAt, vs...))
}

// CompletedAtGT applies the GT predicate on the "completed_at" field.
func CompletedAtGT(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGT(FieldCompletedAt, v))
}

// CompletedAtGTE applies the GTE predicate on the "completed_at" field.
func CompletedAtGTE(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldGTE(FieldCompletedAt, v))
}

// CompletedAtLT applies the LT predicate on the "completed_at" field.
func CompletedAtLT(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLT(FieldCompletedAt, v))
}

// CompletedAtLTE applies the LTE predicate on the "completed_at" field.
func CompletedAtLTE(v time.Time) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldLTE(FieldCompletedAt, v))
}

// CompletedAtIsNil applies the IsNil predicate on the "completed_at" field.
func CompletedAtIsNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldIsNull(FieldCompletedAt))
}

// CompletedAtNotNil applies the NotNil predicate on the "completed_at" field.
func CompletedAtNotNil() predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.FieldNotNull(FieldCompletedAt))
}

// HasTiles applies the HasEdge predicate on the "tiles" edge.
func HasTiles() predicate.UpscaleJob {
	return predicate.UpscaleJob(func(s *sql.Selector) {
		step := sqlgraph.NewStep(
			sqlgraph.From(Table, FieldID),
			sqlgraph.Edge(sqlgraph.O2M, false, TilesTable, TilesColumn),
		)
		sqlgraph.HasNeighbors(s, step)
	})
}

// HasTilesWith applies the HasEdge predicate on the "tiles" edge with a given conditions (other predicates).
func HasTilesWith(preds ...predicate.Tile) predicate.UpscaleJob {
	return predicate.UpscaleJob(func(s *sql.Selector) {
		step := newTilesStep()
		sqlgraph.HasNeighborsWith(s, step, func(s *sql.Selector) {
			for _, p := range preds {
				p(s)
			}
		})
	})
}

// And groups predicates with the AND operator between them.
func And(predicates ...predicate.UpscaleJob) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.AndPredicates(predicates...))
}

// Or groups predicates with the OR operator between them.
func Or(predicates ...predicate.UpscaleJob) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.OrPredicates(predicates...))
}

// Not applies the not operator on the given predicate.
func Not(p predicate.UpscaleJob) predicate.UpscaleJob {
	return predicate.UpscaleJob(sql.NotPredicates(p))
}
