package views

import "github.com/pterm/pterm"

type SystemInfoItem struct {
	ConfigPath     string
	AccountSeed    int64
	NextAccountID  int64
	OpenMode       string
	TimeFormat     string
	StatementStyle string
	LogLevel       string
	LogDestination string
}

func RenderSystemInfo(data SystemInfoItem) error {
	openMode := pterm.Green(data.OpenMode)
	if data.OpenMode != "strict" {
		openMode = pterm.Yellow(data.OpenMode)
	}

	tableData := pterm.TableData{
		{"Configuration File", data.ConfigPath},
		{"Account Number Seed", pterm.Sprintf("%d", data.AccountSeed)},
		{"Next Account Number", pterm.Sprintf("%d", data.NextAccountID)},
		{"Account Opening Mode", openMode},
		{"Time Format", data.TimeFormat},
		{"Statement Style", data.StatementStyle},
		{"Log Level", data.LogLevel},
		{"Log Destination", data.LogDestination},
	}

	return pterm.DefaultTable.WithData(tableData).Render()
}
