package templates

// Inline page assets. The dashboard has no static file route.

const (
	styleTag  = "<style>" + dashboardCSS + "</style>"
	scriptTag = "<script>" + dashboardJS + "</script>"
)

const dashboardCSS = `body{font-family:system-ui,sans-serif;margin:0;color:#1f2933;background:#f5f7fa}
header{background:#243b53;color:#fff;padding:.75rem 1.5rem}main{padding:1rem 1.5rem}
.card{background:#fff;border-radius:6px;padding:.75rem 1rem;margin-bottom:1rem}
.filters,.selection,#export-form,#import-form{display:flex;gap:.5rem;flex-wrap:wrap;align-items:center}
table{width:100%;border-collapse:collapse;background:#fff}th,td{padding:.4rem .6rem;border-bottom:1px solid #e4e7eb;text-align:left}
th a{color:inherit;text-decoration:none}.num{text-align:right}.empty{text-align:center;color:#7b8794}
.alert{padding:.6rem 1rem;border-radius:6px;margin-bottom:1rem}.alert-error{background:#ffe3e3;color:#8a1c1c}
.alert-info{background:#e3f8ff;color:#035388}.pager{display:flex;gap:1rem;justify-content:center;margin:1rem 0}`

const dashboardJS = `(function(){
var query = {};
new URLSearchParams(location.search).forEach(function(v, k){ query[k] = v; });
function body(extra){
  var b = Object.assign({}, query, extra);
  if (b.page) b.page = parseInt(b.page, 10);
  if (b.size) b.size = parseInt(b.size, 10);
  return JSON.stringify(b);
}
function showError(e){
  var el = document.getElementById('alerts');
  el.textContent = '';
  var d = document.createElement('div');
  d.className = 'alert alert-error';
  d.textContent = e.message + (e.action ? ' ' + e.action : '') + (e.code ? ' (Code: ' + e.code + ')' : '');
  el.appendChild(d);
}
function send(url, init){
  return fetch(url, init).then(function(res){
    if (res.ok) return res;
    return res.json().catch(function(){ return {message: res.statusText}; }).then(function(e){ showError(e); return null; });
  });
}
function postJSON(url, payload){
  return send(url, {method: 'POST', headers: {'Content-Type': 'application/json', 'Accept': 'application/json'}, body: body(payload)});
}
document.getElementById('import-form').addEventListener('submit', function(ev){
  ev.preventDefault();
  send('/api/import', {method: 'POST', body: new FormData(ev.target)}).then(function(res){ if (res) location.assign('/'); });
});
document.querySelectorAll('[data-order-id]').forEach(function(cb){
  cb.addEventListener('change', function(){
    postJSON('/api/selection', {action: 'toggle', orderId: cb.dataset.orderId}).then(function(res){ if (res) location.reload(); });
  });
});
document.querySelectorAll('[data-action]').forEach(function(btn){
  btn.addEventListener('click', function(){
    postJSON('/api/selection', {action: btn.dataset.action}).then(function(res){ if (res) location.reload(); });
  });
});
var exp = document.getElementById('export-form');
if (exp) exp.addEventListener('submit', function(ev){
  ev.preventDefault();
  var f = new FormData(exp);
  postJSON('/api/export', {type: f.get('type'), startInvoice: f.get('startInvoice')}).then(function(res){
    if (!res) return;
    var name = 'export.csv';
    var m = /filename="([^"]+)"/.exec(res.headers.get('Content-Disposition') || '');
    if (m) name = m[1];
    return res.blob().then(function(blob){
      var a = document.createElement('a');
      a.href = URL.createObjectURL(blob);
      a.download = name;
      document.body.appendChild(a);
      a.click();
      a.remove();
      location.reload();
    });
  });
});
})();`
