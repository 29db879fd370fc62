// Command ledgerctl works on the configured ledger store without the HTTP
// server: summaries, exports, invoice PDFs and spreadsheet imports.
package main

func main() {
	Execute()
}
