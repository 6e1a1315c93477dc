package llm

import (
	"fmt"
)

// WorkedExample is the layout sample embedded in the tailoring prompt.
// The model is told to follow its structure and not its content.
const WorkedExample = `Professional Summary
Tailored summary sentence that aligns with job description.

Education
University of Ottawa                                                         Sept. 2020 – Aug. 2025
-BASc Software Engineering (GPA 9.18)

Experience
Knak – Full Stack Developer (Co-op)                                                        May 2023 – Dec. 2023
-Bullet point one tailored to job
-Bullet point two
-Bullet point three
-Bullet point four

Solace – QA Engineer (Co-op)                                                                  Sept. 2022 – Dec. 2022
-Bullet point one
-Bullet point two
-Bullet point three
-Bullet point four

FINTRAC – Software Developer (Co-op)                                                Feb. 2022 – Apr. 2022
-Bullet point one
-Bullet point two
-Bullet point three
-Bullet point four

Projects
Club Website Platform                                                                    Sept. 2024 – Present
-Bullet point one
-Bullet point two
-Bullet point three
-Bullet point four

Key Skills
Languages/Frameworks: React, TypeScript, Java, SQL
Concepts: REST APIs, CI/CD, Agile, Unit Testing
Tools: Git, Docker, Jenkins
Soft Skills: Communication, Teamwork, Adaptability`

// BuildTailoringPrompt embeds the résumé text and job description verbatim in the
// tailoring instructions. Inputs are neither validated nor truncated.
//
//nolint:funlen // Prompt template
func BuildTailoringPrompt(req TailoringRequest) (prompt string) {
	prompt = fmt.Sprintf(`You are a resume tailoring assistant. Your task is to rewrite and improve the provided resume so that it better matches the job description, while keeping the structure and content grounded in the original resume only.

Here is the resume followed by the job description:
Resume:
%s
Job Description:
%s

== FORMAT AND STRUCTURE REQUIREMENTS ==
1. Keep all original section titles: "Professional Summary", "Education", "Experience", "Projects", and "Key Skills".
2. For each experience or project entry, include exactly 3 to 4 bullet points, each starting with "-".
3. In "Key Skills", maintain the 4 subcategories: Languages/Frameworks, Concepts, Tools, and Soft Skills.
4. You may rewrite or improve any line or sentence, but do NOT:
- Invent technologies, tools, or concepts the original resume does not already mention.
- Reuse entire sentences from the original resume unless they already fit the job description well.
5. Do not add any new sections or headings that are not present in the example format.
6. Do not include any formatting like asterisks, bolding, or markdown. Just plain text and "-" for bullet points.

Please strictly follow the structure shown below. The *content* is just filler; replace it with real tailored content from the original resume and job description. This example is only to demonstrate structure and must not be copied verbatim:
== DESIRED OUTPUT EXAMPLE ==
%s
== END EXAMPLE ==

Now return a tailored resume using this exact structure and only relevant information grounded in the original resume and job description.
`, req.ResumeText, req.JobDescription, WorkedExample)

	return prompt
}
