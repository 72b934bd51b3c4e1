// Package xlsxwriter renders a generated population into a styled Excel
// workbook with four sheets: Stocks, Identity, Holding, and Profile.
//
// The dark theme (green header band, alternating navy rows on a black
// background) matches the spreadsheet consumed by the exchange simulation.
package xlsxwriter
