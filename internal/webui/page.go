// Package webui holds the embedded single-page dashboard. The page is
// the only consumer of the JSON view endpoints; all widget state lives
// in the browser and is sent along with each request.
package webui

// Page is served at / by the dashboard server.
const Page = `<!DOCTYPE html>
<html lang="en">
<head>
<meta charset="UTF-8">
<meta name="viewport" content="width=device-width, initial-scale=1.0">
<title>Device Rental Dashboard</title>
<style>
*{box-sizing:border-box;margin:0;padding:0}
body{font-family:-apple-system,BlinkMacSystemFont,'Segoe UI',Roboto,sans-serif;background:#f5f5f5;color:#333;line-height:1.6}

/* Header */
.hdr{background:linear-gradient(135deg,#1e3a5f 0%,#2d6a8f 100%);color:#fff;padding:14px 20px;display:flex;align-items:center;justify-content:space-between;position:sticky;top:0;z-index:100}
.hdr h1{font-size:18px;font-weight:600}
.hdr-right{font-size:13px;opacity:.85}
.hdr-right a{color:#fff;text-decoration:underline}

/* Tab bar */
.tabs{display:flex;border-bottom:2px solid #e5e7eb;background:#fff;padding:0 16px;position:sticky;top:48px;z-index:99}
.tab{padding:12px 20px;cursor:pointer;font-size:14px;font-weight:500;color:#666;border-bottom:2px solid transparent;margin-bottom:-2px}
.tab:hover{color:#333}
.tab.active{color:#2d6a8f;border-bottom-color:#2d6a8f}

/* Content */
.content{max-width:960px;margin:0 auto;padding:20px}
.page{display:none}
.page.active{display:block}

/* Cards */
.card{background:#fff;border-radius:8px;padding:20px;margin-bottom:16px;box-shadow:0 1px 3px rgba(0,0,0,.1)}
.card h2{font-size:16px;margin-bottom:12px;padding-bottom:8px;border-bottom:1px solid #eee}

/* Metric cards */
.metrics{display:grid;grid-template-columns:repeat(auto-fit,minmax(180px,1fr));gap:12px;margin-bottom:16px}
.metric{background:#fff;border-radius:8px;padding:16px;box-shadow:0 1px 3px rgba(0,0,0,.1)}
.metric .label{font-size:12px;color:#888;text-transform:uppercase;letter-spacing:.5px}
.metric .value{font-size:26px;font-weight:600;margin-top:4px}

/* Proportion bar */
.propbar{display:flex;height:26px;border-radius:6px;overflow:hidden;margin:10px 0}
.propbar div{min-width:2px}
.legend{display:flex;gap:16px;flex-wrap:wrap;font-size:13px;color:#555}
.legend .swatch{display:inline-block;width:10px;height:10px;border-radius:2px;margin-right:5px}

/* Horizontal bar chart */
.hbar{display:flex;align-items:center;gap:10px;margin:6px 0}
.hbar .name{width:160px;font-size:13px;color:#555;text-align:right;flex-shrink:0}
.hbar .track{flex:1;background:#f0f1f3;border-radius:4px;height:22px}
.hbar .fill{height:22px;border-radius:4px;display:flex;align-items:center;justify-content:flex-end;padding-right:6px;color:#fff;font-size:12px;min-width:36px}
.cat-printer{background:#2d6a8f}
.cat-computer{background:#4d9a6a}

/* Tables */
table{width:100%;border-collapse:collapse;font-size:13px}
th{background:#f9fafb;text-align:left;padding:8px 10px;border-bottom:2px solid #e5e7eb;font-weight:600;color:#555}
td{padding:8px 10px;border-bottom:1px solid #f0f1f3}
tr.expired td{background:#fef2f2;color:#991b1b}
.num{text-align:right}

/* Badges */
.badge{display:inline-block;padding:2px 10px;border-radius:20px;font-size:12px;font-weight:500}
.badge-active{background:#dcfce7;color:#166534}
.badge-maintenance{background:#fef9c3;color:#854d0e}
.badge-inactive{background:#f3f4f6;color:#374151}

/* Filter + form controls */
.filter{display:flex;gap:18px;margin-bottom:12px;font-size:14px;align-items:center}
.filter label{cursor:pointer}
.form-row{display:flex;gap:12px;flex-wrap:wrap;align-items:flex-end}
.form-row .grp{display:flex;flex-direction:column;gap:4px;font-size:13px;color:#555}
select{padding:8px 12px;border:1px solid #ddd;border-radius:6px;font-size:14px}
.btn{padding:8px 16px;border-radius:6px;border:none;cursor:pointer;font-size:14px;font-weight:500;background:#2d6a8f;color:#fff}
.btn:hover{background:#255a7a}

/* Notices */
.notice{padding:10px 14px;border-radius:6px;font-size:13px;margin:10px 0}
.notice-ok{background:#dcfce7;color:#166534}
.notice-info{background:#dbeafe;color:#1e40af}
.notice-warn{background:#fef9c3;color:#854d0e}
.muted{font-size:12px;color:#888;margin-top:6px}
footer{max-width:960px;margin:0 auto;padding:10px 20px 24px;font-size:12px;color:#999}
</style>
</head>
<body>
<div class="hdr">
 <h1>Device Rental Dashboard</h1>
 <div class="hdr-right"><a href="/api/export">Download report (xlsx)</a></div>
</div>
<div class="tabs">
 <div class="tab active" data-page="overview" onclick="nav('overview')">Overview</div>
 <div class="tab" data-page="finance" onclick="nav('finance')">Finance</div>
 <div class="tab" data-page="inventory" onclick="nav('inventory')">Inventory</div>
 <div class="tab" data-page="leases" onclick="nav('leases')">Leases</div>
</div>
<div class="content">

<div class="page active" id="page-overview">
 <div class="metrics" id="ov-metrics"></div>
 <div class="card">
  <h2>Status distribution</h2>
  <div class="propbar" id="ov-propbar"></div>
  <div class="legend" id="ov-legend"></div>
 </div>
</div>

<div class="page" id="page-finance">
 <div class="card">
  <h2>ROI by device (%)</h2>
  <div id="fin-bars"></div>
  <div id="fin-exclusions"></div>
 </div>
 <div class="card">
  <h2>Maintenance cost share</h2>
  <div class="propbar" id="fin-propbar"></div>
  <div class="legend" id="fin-legend"></div>
 </div>
</div>

<div class="page" id="page-inventory">
 <div class="card">
  <h2>Device inventory</h2>
  <div class="filter" id="inv-filter"></div>
  <div id="inv-count" class="muted"></div>
  <table>
   <thead><tr><th>Device</th><th>Category</th><th>Model</th><th>Status</th><th>Client</th><th class="num">Income</th><th class="num">Cost</th></tr></thead>
   <tbody id="inv-rows"></tbody>
  </table>
 </div>
 <div class="card">
  <h2>Update device status</h2>
  <div class="form-row">
   <div class="grp"><span>Device</span><select id="upd-device"></select></div>
   <div class="grp"><span>New status</span><select id="upd-status">
    <option value="active">Active</option>
    <option value="maintenance">Maintenance</option>
    <option value="inactive">Inactive</option>
   </select></div>
   <button class="btn" onclick="submitStatus()">Confirm</button>
  </div>
  <div id="upd-result"></div>
  <div class="muted">Changes are acknowledged for this view only; the dataset is rebuilt on every load.</div>
 </div>
</div>

<div class="page" id="page-leases">
 <div class="card">
  <h2>Leases expiring soon</h2>
  <div id="lease-note" class="muted"></div>
  <div id="lease-warning"></div>
 </div>
 <div class="card">
  <h2>Lease summary by category</h2>
  <table>
   <thead><tr><th>Category</th><th class="num">Devices</th><th class="num">Income</th><th>Earliest start</th><th>Latest end</th></tr></thead>
   <tbody id="lease-summary"></tbody>
  </table>
 </div>
</div>

</div>
<footer id="foot"></footer>

<script>
var currentPage = 'overview';
var statusColors = {active:'#4d9a6a', maintenance:'#d9a441', inactive:'#9ca3af'};
var costColors = ['#2d6a8f','#4d9a6a','#d9a441','#8f5a9e','#b05555','#5a8f8a'];
var invSelection = {printer:true, computer:true};

function nav(page) {
 currentPage = page;
 var tabs = document.querySelectorAll('.tab');
 for (var i = 0; i < tabs.length; i++) tabs[i].classList.remove('active');
 document.querySelector('.tab[data-page="' + page + '"]').classList.add('active');
 var pages = document.querySelectorAll('.page');
 for (var j = 0; j < pages.length; j++) pages[j].classList.remove('active');
 document.getElementById('page-' + page).classList.add('active');
 load(page);
}

function money(v) {
 return '$' + v.toLocaleString('en-US', {minimumFractionDigits:2, maximumFractionDigits:2});
}

function esc(s) {
 var d = document.createElement('div');
 d.appendChild(document.createTextNode(s));
 return d.innerHTML;
}

function cap(s) {
 return s.charAt(0).toUpperCase() + s.slice(1);
}

function badge(status) {
 return '<span class="badge badge-' + esc(status) + '">' + esc(cap(status)) + '</span>';
}

function load(page) {
 if (page === 'overview') loadOverview();
 else if (page === 'finance') loadFinance();
 else if (page === 'inventory') loadInventory();
 else loadLeases();
}

function loadOverview() {
 fetch('/api/overview').then(function(r){return r.json()}).then(function(o) {
  var cards = [
   {label:'Devices', value:o.device_count},
   {label:'Total income', value:money(o.total_income)},
   {label:'Maintenance cost', value:money(o.total_cost)},
   {label:'Active devices', value:o.active_count}
  ];
  var html = '';
  for (var i = 0; i < cards.length; i++) {
   html += '<div class="metric"><div class="label">' + cards[i].label + '</div><div class="value">' + cards[i].value + '</div></div>';
  }
  document.getElementById('ov-metrics').innerHTML = html;

  var bar = '', legend = '';
  var slices = o.status_breakdown || [];
  for (var k = 0; k < slices.length; k++) {
   var s = slices[k];
   var color = statusColors[s.status] || '#9ca3af';
   bar += '<div style="width:' + s.share_percent + '%;background:' + color + '"></div>';
   legend += '<span><span class="swatch" style="background:' + color + '"></span>' + esc(s.label) + ' — ' + s.count + ' (' + s.share_percent.toFixed(0) + '%)</span>';
  }
  document.getElementById('ov-propbar').innerHTML = bar;
  document.getElementById('ov-legend').innerHTML = legend;
 });
}

function loadFinance() {
 fetch('/api/finance').then(function(r){return r.json()}).then(function(f) {
  var bars = f.roi_bars || [];
  var max = 0;
  for (var i = 0; i < bars.length; i++) if (bars[i].roi_percent > max) max = bars[i].roi_percent;
  var html = '';
  for (var j = 0; j < bars.length; j++) {
   var b = bars[j];
   var width = max > 0 ? Math.max(b.roi_percent / max * 100, 0) : 0;
   html += '<div class="hbar"><div class="name">' + esc(b.device_id) + ' · ' + esc(b.model) + '</div>' +
    '<div class="track"><div class="fill cat-' + esc(b.category) + '" style="width:' + width + '%">' + b.roi_percent.toFixed(1) + '%</div></div></div>';
  }
  if (bars.length === 0) html = '<div class="notice notice-info">No devices with a defined ROI.</div>';
  document.getElementById('fin-bars').innerHTML = html;

  var ex = f.exclusions || [];
  var exHtml = '';
  if (ex.length > 0) {
   exHtml = '<div class="notice notice-warn">Excluded from the chart: ';
   for (var e = 0; e < ex.length; e++) {
    if (e > 0) exHtml += ', ';
    exHtml += esc(ex[e].device_id) + ' (' + esc(ex[e].reason) + ')';
   }
   exHtml += '</div>';
  }
  document.getElementById('fin-exclusions').innerHTML = exHtml;

  var shares = f.cost_shares || [];
  var bar = '', legend = '';
  for (var k = 0; k < shares.length; k++) {
   var s = shares[k];
   var color = costColors[k % costColors.length];
   bar += '<div style="width:' + s.share_percent + '%;background:' + color + '"></div>';
   legend += '<span><span class="swatch" style="background:' + color + '"></span>' + esc(s.device_id) + ' — ' + money(s.cost) + '</span>';
  }
  document.getElementById('fin-propbar').innerHTML = bar;
  document.getElementById('fin-legend').innerHTML = legend;
 });
}

function inventoryQuery() {
 if (invSelection.printer && invSelection.computer) return '';
 var params = [];
 if (invSelection.printer) params.push('category=printer');
 if (invSelection.computer) params.push('category=computer');
 // A bare category= tells the server every box is unchecked, which is
 // not the same as sending no filter at all.
 return '?' + (params.length > 0 ? params.join('&') : 'category=');
}

function toggleCategory(cat) {
 invSelection[cat] = !invSelection[cat];
 loadInventory();
}

function loadInventory() {
 fetch('/api/inventory' + inventoryQuery()).then(function(r){return r.json()}).then(function(inv) {
  var opts = inv.options || [];
  var filter = '<span>Categories:</span>';
  for (var i = 0; i < opts.length; i++) {
   var o = opts[i];
   filter += '<label><input type="checkbox" ' + (invSelection[o.category] ? 'checked' : '') +
    ' onchange="toggleCategory(\'' + o.category + '\')"> ' + esc(o.label) + ' (' + o.count + ')</label>';
  }
  document.getElementById('inv-filter').innerHTML = filter;
  document.getElementById('inv-count').textContent = 'Showing ' + inv.filtered_count + ' of ' + inv.total_count + ' devices';

  var rows = inv.rows || [];
  var html = '';
  var devices = '';
  for (var j = 0; j < rows.length; j++) {
   var r = rows[j];
   html += '<tr><td>' + esc(r.device_id) + '</td><td>' + esc(cap(r.category)) + '</td><td>' + esc(r.model) + '</td>' +
    '<td>' + badge(r.status) + '</td><td>' + esc(r.client) + '</td>' +
    '<td class="num">' + money(r.lease_income) + '</td><td class="num">' + money(r.maintenance_cost) + '</td></tr>';
   devices += '<option value="' + esc(r.device_id) + '">' + esc(r.device_id) + ' — ' + esc(r.model) + '</option>';
  }
  document.getElementById('inv-rows').innerHTML = html;
  document.getElementById('upd-device').innerHTML = devices;
 });
}

function submitStatus() {
 var device = document.getElementById('upd-device').value;
 var status = document.getElementById('upd-status').value;
 if (!device) return;
 fetch('/api/devices/' + encodeURIComponent(device) + '/status', {
  method: 'POST',
  headers: {'Content-Type': 'application/json'},
  body: JSON.stringify({status: status})
 }).then(function(r){return r.json()}).then(function(res) {
  var el = document.getElementById('upd-result');
  if (res.message) {
   el.innerHTML = '<div class="notice notice-ok">' + esc(res.message) + '<br><span class="muted">receipt ' + esc(res.receipt_id) + '</span></div>';
  } else {
   el.innerHTML = '<div class="notice notice-warn">' + esc(res.error || 'request failed') + '</div>';
  }
 });
}

function loadLeases() {
 fetch('/api/leases').then(function(r){return r.json()}).then(function(l) {
  document.getElementById('lease-note').textContent =
   'Window: ' + l.window_days + ' days, evaluated on ' + l.evaluated_on;

  var el = document.getElementById('lease-warning');
  if (l.none_expiring) {
   el.innerHTML = '<div class="notice notice-info">No leases expire within ' + l.window_days + ' days.</div>';
  } else {
   var rows = l.expiring_soon || [];
   var html = '<table><thead><tr><th>Device</th><th>Category</th><th>Model</th><th>Client</th><th>Lease start</th><th>Lease end</th><th class="num">Days left</th></tr></thead><tbody>';
   for (var i = 0; i < rows.length; i++) {
    var r = rows[i];
    html += '<tr' + (r.expired ? ' class="expired"' : '') + '><td>' + esc(r.device_id) + '</td><td>' + esc(cap(r.category)) + '</td>' +
     '<td>' + esc(r.model) + '</td><td>' + esc(r.client) + '</td><td>' + esc(r.lease_start) + '</td><td>' + esc(r.lease_end) + '</td>' +
     '<td class="num">' + r.days_to_expiration + '</td></tr>';
   }
   el.innerHTML = html + '</tbody></table>';
  }

  var sums = l.summaries || [];
  var sHtml = '';
  for (var k = 0; k < sums.length; k++) {
   var s = sums[k];
   sHtml += '<tr><td>' + esc(s.label) + '</td><td class="num">' + s.device_count + '</td>' +
    '<td class="num">' + money(s.income_sum) + '</td><td>' + esc(s.earliest_start) + '</td><td>' + esc(s.latest_end) + '</td></tr>';
  }
  document.getElementById('lease-summary').innerHTML = sHtml;
 });
}

function init() {
 fetch('/healthz').then(function(r){return r.json()}).then(function(h) {
  document.getElementById('foot').textContent = 'dataset ' + h.dataset + ' · ' + h.devices + ' devices';
 }).catch(function(){});
 load(currentPage);
}
init();
</script>
</body>
</html>
`
