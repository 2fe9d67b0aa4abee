package config

// DatasetConfig points at the spreadsheet backing the dashboard.
type DatasetConfig struct {
	File   string
	Source string // xlsx, csv, fixture or auto (pick by file extension)
	Sheet  string // empty selects the first sheet
	// PreviewRows is how many leading rows the dataset preview shows.
	PreviewRows int
}

func loadDataset() DatasetConfig {
	return DatasetConfig{
		File:        envOrDefault(envDataFile, defaultDataFile),
		Source:      envOrDefault(envDataSource, defaultDataSource),
		Sheet:       envOrDefault(envDataSheet, ""),
		PreviewRows: intEnvOrDefault(envPreviewRows, defaultPreviewRows),
	}
}
