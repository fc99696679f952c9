package summarize

import (
	"fmt"

	"ewintr.nl/vidsum/model"
)

const systemPrompt = `You are an expert content analyst who creates clear, factual summaries of video content. Your summaries are informative, well-organized, and focus on what actually happens in the video. You write in a straightforward, professional tone that clearly explains the content without promotional language. You include specific details and quotes to give readers a complete understanding of what the video covers.`

const briefPrompt = `Create a concise summary (1-2 paragraphs) of what happens in this video. Focus on the main content, who is involved, and what topics are discussed. Write in a straightforward, informative style.

Transcript: %s

Brief Summary:`

const detailedPrompt = `Create a comprehensive summary that covers all important aspects of this video's content. Include specific details about conversations, topics discussed, people involved, and key information shared. Be thorough but factual - focus on what actually happens and what is said rather than promotional language.

Transcript: %s

Detailed Summary:`

const structuredPrompt = `Create a well-structured summary of this video's content. Organize the information clearly and focus on what actually happens in the video.

Structure your summary with these sections:

**Content Overview**: What type of video this is and who is involved
**Main Topics Discussed**: The key subjects and conversations that take place
**Key People**: Who appears in the video and their relevance
**Important Information**: Specific details, announcements, or notable moments
**Key Points**: The main takeaways from the content

Write in a clear, factual tone. Focus on summarizing the actual content rather than using promotional language. Be specific about what is discussed and what information is shared.

Transcript: %s

Content Summary:`

// Prompt embeds the transcript verbatim in the template for the given style.
func Prompt(transcript string, style model.SummaryStyle) string {
	switch style {
	case model.StyleBrief:
		return fmt.Sprintf(briefPrompt, transcript)
	case model.StyleDetailed:
		return fmt.Sprintf(detailedPrompt, transcript)
	default:
		return fmt.Sprintf(structuredPrompt, transcript)
	}
}
