package debugui

// PipelineInspector shows pipeline state: capabilities, the enabled toggle
// and the pass chain with a boost graph.
type PipelineInspector struct {
	boostHistory []float32
	boostIndex   int
}

// FrameStats shows frame timing and pass execution statistics.
type FrameStats struct {
	historyFrames int
	frameHistory  []float32
	frameIndex    int
}
