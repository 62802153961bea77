package report

const htmlTemplate = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Candidate Verification Report - {{.Timestamp}}</title>
<style>
body { font-family: 'Segoe UI', Tahoma, Geneva, Verdana, sans-serif; background: #1a1a2e; color: #eaeaea; padding: 40px; line-height: 1.6; }
.container { max-width: 1400px; margin: 0 auto; background: #16213e; padding: 40px; border-radius: 12px; box-shadow: 0 8px 32px rgba(0, 0, 0, 0.3); }
h1 { color: #e94560; border-bottom: 3px solid #e94560; padding-bottom: 15px; margin-bottom: 30px; }
h2 { color: #4dabf7; margin-top: 40px; margin-bottom: 20px; }
.summary { display: grid; grid-template-columns: repeat(auto-fit, minmax(200px, 1fr)); gap: 20px; margin-bottom: 40px; }
.stat-card { background: #0f3460; padding: 20px; border-radius: 8px; text-align: center; border-left: 4px solid #e94560; }
.stat-card h3 { color: #a0a0a0; font-size: 0.9rem; margin-bottom: 10px; text-transform: uppercase; }
.stat-value { font-size: 2.5rem; font-weight: bold; color: #eaeaea; }
.critical { color: #ff4757; }
.high { color: #ffa500; }
.medium { color: #4dabf7; }
.low { color: #00d9a3; }
table { width: 100%; border-collapse: collapse; margin-top: 20px; background: #0f3460; border-radius: 8px; overflow: hidden; }
th { background: #0f3460; padding: 15px; text-align: left; color: #eaeaea; font-weight: bold; border-bottom: 2px solid #2c3e50; }
td { padding: 12px 15px; border-bottom: 1px solid #2c3e50; color: #a0a0a0; }
tr:hover { background: #16213e; }
.badge { display: inline-block; padding: 4px 12px; border-radius: 12px; font-size: 0.85rem; font-weight: bold; text-transform: uppercase; }
.badge-critical { background: rgba(255, 71, 87, 0.2); color: #ff4757; }
.badge-high { background: rgba(255, 165, 0, 0.2); color: #ffa500; }
.badge-medium { background: rgba(77, 171, 247, 0.2); color: #4dabf7; }
.badge-low { background: rgba(0, 217, 163, 0.2); color: #00d9a3; }
.red-flags { background: #0f3460; padding: 15px; border-radius: 6px; margin-top: 10px; border-left: 4px solid #ff4757; }
.red-flags ul { margin: 10px 0 0 20px; padding: 0; }
.red-flags li { margin-bottom: 8px; }
.footer { margin-top: 60px; padding-top: 20px; border-top: 2px solid #2c3e50; text-align: center; color: #a0a0a0; font-size: 0.9rem; }
</style>
</head>
<body>
<div class="container">
<h1>Candidate Verification Report</h1>
<p style="color: #a0a0a0;">Generated: {{.Timestamp}}</p>

<h2>Summary Statistics</h2>
<div class="summary">
<div class="stat-card"><h3>Total Processed</h3><div class="stat-value">{{.Result.Processed}}</div></div>
<div class="stat-card" style="border-left-color: #ff4757;"><h3>Critical Risk</h3><div class="stat-value critical">{{.Result.Summary.CriticalRisk}}</div></div>
<div class="stat-card" style="border-left-color: #ffa500;"><h3>High Risk</h3><div class="stat-value high">{{.Result.Summary.HighRisk}}</div></div>
<div class="stat-card" style="border-left-color: #4dabf7;"><h3>Medium Risk</h3><div class="stat-value medium">{{.Result.Summary.MediumRisk}}</div></div>
<div class="stat-card" style="border-left-color: #00d9a3;"><h3>Low/Minimal</h3><div class="stat-value low">{{.LowMinimal}}</div></div>
<div class="stat-card" style="border-left-color: #ff4757;"><h3>AI Generated</h3><div class="stat-value">{{.Result.Summary.AIGeneratedCount}}</div></div>
<div class="stat-card" style="border-left-color: #ff4757;"><h3>Trap Terms</h3><div class="stat-value">{{.Result.Summary.TrapTermsCount}}</div></div>
</div>

<h2>High Priority Candidates (Critical &amp; High Risk)</h2>
{{if .HighPriority}}
<table>
<thead>
<tr><th>#</th><th>Candidate Name</th><th>Risk Score</th><th>Risk Level</th><th>AI Generated</th><th>Red Flags</th><th>Recommendation</th></tr>
</thead>
<tbody>
{{range $i, $e := .HighPriority}}
<tr>
<td>{{add1 $i}}</td>
<td><strong>{{name $e}}</strong></td>
<td><strong class="{{lower (printf "%s" $e.Assessment.Level)}}">{{$e.Assessment.Score}}</strong></td>
<td><span class="badge {{badgeClass $e.Assessment.Level}}">{{$e.Assessment.Level}}</span></td>
<td><span class="badge {{if $e.AIGenerated}}badge-critical{{else}}badge-low{{end}}">{{if $e.AIGenerated}}YES{{else}}NO{{end}}</span></td>
<td>C:{{$e.CriticalFlags}} W:{{$e.WarningFlags}} M:{{$e.MinorFlags}}</td>
<td style="font-size: 0.9rem;">{{$e.Assessment.Recommendation}}</td>
</tr>
{{if $e.Bundle}}{{if or $e.Bundle.RedFlags.Critical $e.Bundle.RedFlags.Warning}}
<tr><td colspan="7"><div class="red-flags">
<strong>Detailed Red Flags for {{name $e}}:</strong>
{{if $e.Bundle.RedFlags.Critical}}<ul><strong style="color: #ff4757;">CRITICAL:</strong>
{{range $e.Bundle.RedFlags.Critical}}<li><strong>{{.Kind}}</strong>: {{.Description}}{{if .Recommendation}}<br><em style="color: #e94560;">{{.Recommendation}}</em>{{end}}</li>{{end}}
</ul>{{end}}
{{if $e.Bundle.RedFlags.Warning}}<ul><strong style="color: #ffa500;">WARNINGS:</strong>
{{range $e.Bundle.RedFlags.Warning}}<li><strong>{{.Kind}}</strong>: {{.Description}}</li>{{end}}
</ul>{{end}}
</div></td></tr>
{{end}}{{end}}
{{end}}
</tbody>
</table>
{{else}}
<p style="color: #00d9a3;">No high-priority fraud indicators detected!</p>
{{end}}

<h2>All Candidates</h2>
{{if .Result.Entries}}
<table>
<thead>
<tr><th>#</th><th>Candidate Name</th><th>Risk Score</th><th>Risk Level</th><th>AI Generated</th><th>Red Flags</th><th>Recommendation</th></tr>
</thead>
<tbody>
{{range $i, $e := .Result.Entries}}
<tr>
<td>{{add1 $i}}</td>
<td><strong>{{name $e}}</strong></td>
<td><strong class="{{lower (printf "%s" $e.Assessment.Level)}}">{{$e.Assessment.Score}}</strong></td>
<td><span class="badge {{badgeClass $e.Assessment.Level}}">{{$e.Assessment.Level}}</span></td>
<td><span class="badge {{if $e.AIGenerated}}badge-critical{{else}}badge-low{{end}}">{{if $e.AIGenerated}}YES{{else}}NO{{end}}</span></td>
<td>C:{{$e.CriticalFlags}} W:{{$e.WarningFlags}} M:{{$e.MinorFlags}}</td>
<td style="font-size: 0.9rem;">{{$e.Assessment.Recommendation}}</td>
</tr>
{{end}}
</tbody>
</table>
{{else}}
<p style="color: #a0a0a0;">No candidates in this category.</p>
{{end}}

<div class="footer">
<p><strong>Candidate Verification System v1.0</strong></p>
<p>This report assists in fraud detection but should not be the sole basis for hiring decisions.</p>
</div>
</div>
</body>
</html>
`
