// Code generated by ent, DO NOT EDIT.

package ent

import (
	"time"

	"github.com/pixelrelay/upscaled/ent/processedcallback"
	"github.com/pixelrelay/upscaled/ent/schema"
	"github.com/pixelrelay/upscaled/ent/tile"
	"github.com/pixelrelay/upscaled/ent/upscalejob"
)

// The init function reads all schema descriptors with runtime code
// (default values, validators, hooks and policies) and stitches it
// to their package variables.
func init() {
	processedcallbackFields := schema.ProcessedCallback{}.Fields()
	_ = processedcallbackFields
	// processedcallbackDescReceivedAt is the schema descriptor for received_at field.
	processedcallbackDescReceivedAt := processedcallbackFields[3].Descriptor()
	// processedcallback.DefaultReceivedAt holds the default value on creation for the received_at field.
	processedcallback.DefaultReceivedAt = processedcallbackDescReceivedAt.Default.(func() time.Time)
	tileFields := schema.Tile{}.Fields()
	_ = tileFields
	// tileDescStatus is the schema descriptor for status field.
	tileDescStatus := tileFields[9].Descriptor()
	// tile.DefaultStatus holds the default value on creation for the status field.
	tile.DefaultStatus = tileDescStatus.Default.(string)
	// tileDescCreatedAt is the schema descriptor for created_at field.
	tileDescCreatedAt := tileFields[12].Descriptor()
	// tile.DefaultCreatedAt holds the default value on creation for the created_at field.
	tile.DefaultCreatedAt = tileDescCreatedAt.Default.(func() time.Time)
	// tileDescUpdatedAt is the schema descriptor for updated_at field.
	tileDescUpdatedAt := tileFields[13].Descriptor()
	// tile.DefaultUpdatedAt holds the default value on creation for the updated_at field.
	tile.DefaultUpdatedAt = tileDescUpdatedAt.Default.(func() time.Time)
	// tile.UpdateDefaultUpdatedAt holds the default value on update for the updated_at field.
	tile.UpdateDefaultUpdatedAt = tileDescUpdatedAt.UpdateDefault.(func() time.Time)
	upscalejobFields := schema.UpscaleJob{}.Fields()
	_ = upscalejobFields
	// upscalejobDescUsingTiling is the schema descriptor for using_tiling field.
	upscalejobDescUsingTiling := upscalejobFields[11].Descriptor()
	// upscalejob.DefaultUsingTiling holds the default value on creation for the using_tiling field.
	upscalejob.DefaultUsingTiling = upscalejobDescUsingTiling.Default.(bool)
	// upscalejobDescCurrentStage is the schema descriptor for current_stage field.
	upscalejobDescCurrentStage := upscalejobFields[12].Descriptor()
	// upscalejob.DefaultCurrentStage holds the default value on creation for the current_stage field.
	upscalejob.DefaultCurrentStage = upscalejobDescCurrentStage.Default.(int)
	// upscalejobDescRetryCount is the schema descriptor for retry_count field.
	upscalejobDescRetryCount := upscalejobFields[16].Descriptor()
	// upscalejob.DefaultRetryCount holds the default value on creation for the retry_count field.
	upscalejob.DefaultRetryCount = upscalejobDescRetryCount.Default.(int)
	// upscalejobDescCreatedAt is the schema descriptor for created_at field.
	upscalejobDescCreatedAt := upscalejobFields[21].Descriptor()
	// upscalejob.DefaultCreatedAt holds the default value on creation for the created_at field.
	upscalejob.DefaultCreatedAt = upscalejobDescCreatedAt.Default.(func() time.Time)
}
