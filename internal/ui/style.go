package ui

// StyleSheet returns the inline CSS served at /style.css.
func StyleSheet() string {
	return `body { font-family: system-ui, sans-serif; margin: 0; background: #fafafa; color: #111; }
.head { padding: 12px 20px; background: #c00; color: #fff; }
.head h1 { margin: 0; font-size: 20px; }
.controls { display: flex; gap: 12px; align-items: center; padding: 12px 20px; }
.controls label { margin-right: 6px; }
.controls select { padding: 4px 8px; }
.refresh { padding: 4px 14px; cursor: pointer; }
.page { padding: 0 20px 20px; }
.banner.error { background: #fdecea; border: 1px solid #c00; color: #900; padding: 12px 16px; border-radius: 4px; }
.empty { color: #666; }
table.trending { border-collapse: collapse; width: 100%; }
table.trending th, table.trending td { border-bottom: 1px solid #ddd; padding: 6px 10px; text-align: left; }
td.rank { color: #666; width: 2em; }
td.thumb img { width: 120px; display: block; }
td.num { text-align: right; white-space: nowrap; }
td.title a { color: #06c; text-decoration: none; }
td.title a:hover { text-decoration: underline; }
.footer { padding: 12px 20px; color: #999; font-size: 12px; }
`
}
