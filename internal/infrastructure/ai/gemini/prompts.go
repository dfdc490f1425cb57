package gemini

const composerPromptEN = `You are an assistant that interprets GitHub repository data and answers user questions accurately.
Answer based only on the data below. Timestamps are RFC 3339. Be concise and mention counts when the user asks for lists.

User question: %s

GitHub data (%d records):
%s

Provide the most relevant answer.`

const composerPromptES = `Sos un asistente que interpreta datos de un repositorio de GitHub y responde preguntas con precisión.
Respondé solo en base a los datos de abajo. Las fechas están en RFC 3339. Sé conciso y mencioná cantidades cuando pidan listas.

Pregunta del usuario: %s

Datos de GitHub (%d registros):
%s

Dá la respuesta más relevante.`

const classifierPrompt = `You map user questions about a GitHub repository to exactly one action.
Actions: files, issues, issue_detail, pull_requests, commits, summary.
Use 'issue_detail' only when the question asks about one specific issue, like 'issue #38'.
Use 'issues' when the question asks for several issues, like 'last 5 open issues'.
Answer with the action name only, nothing else.

User question: %s`
