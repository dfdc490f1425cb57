package server

// chatPage es la UI mínima del navegador: un transcript y un input que
// pega contra /api/v1/chat.
const chatPage = `<!doctype html>
<html lang="en">
<head>
<meta charset="utf-8">
<title>MateChat 🧉</title>
<style>
  body { font-family: sans-serif; max-width: 720px; margin: 2rem auto; padding: 0 1rem; background: #fafaf5; }
  h1 { font-size: 1.3rem; }
  #transcript { border: 1px solid #ddd; border-radius: 8px; padding: 1rem; min-height: 300px; background: #fff; }
  .turn { margin-bottom: 1rem; }
  .q { font-weight: bold; color: #14532d; }
  .a { white-space: pre-wrap; }
  form { display: flex; gap: .5rem; margin-top: 1rem; }
  input { flex: 1; padding: .5rem; border: 1px solid #ccc; border-radius: 6px; }
  button { padding: .5rem 1rem; border: 0; border-radius: 6px; background: #14532d; color: #fff; cursor: pointer; }
</style>
</head>
<body>
<h1>🧉 MateChat</h1>
<div id="transcript"></div>
<form id="form">
  <input id="question" placeholder="Ask about the repository..." autocomplete="off" autofocus>
  <button type="submit">Send</button>
</form>
<script>
const transcript = document.getElementById('transcript');
const form = document.getElementById('form');
const input = document.getElementById('question');

function addTurn(question, answer) {
  const div = document.createElement('div');
  div.className = 'turn';
  const q = document.createElement('div');
  q.className = 'q';
  q.textContent = question;
  const a = document.createElement('div');
  a.className = 'a';
  a.textContent = answer;
  div.append(q, a);
  transcript.append(div);
  transcript.scrollTop = transcript.scrollHeight;
}

form.addEventListener('submit', async (e) => {
  e.preventDefault();
  const question = input.value.trim();
  if (!question) return;
  input.value = '';
  const res = await fetch('/api/v1/chat', {
    method: 'POST',
    headers: {'Content-Type': 'application/json'},
    body: JSON.stringify({question})
  });
  const body = await res.json();
  addTurn(question, res.ok ? body.answer : (body.message || 'error'));
});
</script>
</body>
</html>
`
