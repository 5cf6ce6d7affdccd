package similarity

import (
	"fmt"

	"github.com/rafaelandrade/intelligent-resume-matcher/pkg/utils"
)

const lexicalPromptEN = `You are a text similarity rater. Compare the resume and the job description below and rate how similar their vocabulary and required skills are.

Resume:
%s

Job description:
%s

Respond with a single number between 0 and 1. Do not include any explanation or other text.`

const lexicalPromptPT = `Você é um avaliador de similaridade de textos. Compare o currículo e a descrição da vaga abaixo e avalie o quão similares são o vocabulário e as habilidades exigidas.

Currículo:
%s

Descrição da vaga:
%s

Responda com um único número entre 0 e 1. Não inclua explicações nem outro texto.`

const contextualPromptEN = `You are a career advisor. Analyze how well the candidate's resume matches the job description below.

Resume:
%s

Job description:
%s

Respond in exactly this format:
Score: <a number between 0 and 1>
Keywords: <comma-separated skills or qualifications from the job description that are missing from the resume>
Feedback: <two or three sentences of actionable advice for the candidate>`

const contextualPromptPT = `Você é um consultor de carreira. Analise o quanto o currículo do candidato corresponde à descrição da vaga abaixo.

Currículo:
%s

Descrição da vaga:
%s

Responda exatamente neste formato:
Pontuação: <um número entre 0 e 1>
Palavras-chave: <habilidades ou qualificações da vaga ausentes no currículo, separadas por vírgula>
Feedback: <duas ou três frases de conselhos práticos para o candidato>`

// BuildLexicalPrompt selects and fills the bare-score prompt for the language
func BuildLexicalPrompt(resume, jobDescription, language string) string {
	if utils.IsPortuguese(language) {
		return fmt.Sprintf(lexicalPromptPT, resume, jobDescription)
	}
	return fmt.Sprintf(lexicalPromptEN, resume, jobDescription)
}

// BuildContextualPrompt selects and fills the structured analysis prompt for
// the language
func BuildContextualPrompt(resume, jobDescription, language string) string {
	if utils.IsPortuguese(language) {
		return fmt.Sprintf(contextualPromptPT, resume, jobDescription)
	}
	return fmt.Sprintf(contextualPromptEN, resume, jobDescription)
}
