package ggufpipe

// Indirection layer to allow stubbing in tests

var (
	fnRunCmd = RunCmd

	fnFetchMetadata    = (*Pipeline).fetchMetadata
	fnDownloadModel    = (*Pipeline).downloadModel
	fnCheckCheckpoints = (*Pipeline).checkCheckpoints
	fnSyncToolchain    = (*Pipeline).syncToolchain
	fnConvertModel     = (*Pipeline).convertModel
	fnRunModel         = (*Pipeline).runModel

	fnRunPipeline = (*Pipeline).Run
)
