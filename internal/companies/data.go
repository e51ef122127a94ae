package companies

import "github.com/jonathan/jobsearch/internal/types"

// directory is the static suggestion catalog. It covers the companies a job
// seeker is most likely to type, weighted toward tech; the search path does
// not require a company to be listed here.
var directory = []types.CompanySuggestion{
	{Name: "Google", Domain: "google.com", Industry: "Technology", Size: "100,000+", Location: "Mountain View, CA"},
	{Name: "Microsoft", Domain: "microsoft.com", Industry: "Technology", Size: "100,000+", Location: "Redmond, WA"},
	{Name: "Apple", Domain: "apple.com", Industry: "Technology", Size: "100,000+", Location: "Cupertino, CA"},
	{Name: "Amazon", Domain: "amazon.com", Industry: "E-commerce", Size: "100,000+", Location: "Seattle, WA"},
	{Name: "Meta", Domain: "meta.com", Industry: "Social Media", Size: "50,000+", Location: "Menlo Park, CA"},
	{Name: "Netflix", Domain: "netflix.com", Industry: "Entertainment", Size: "10,000+", Location: "Los Gatos, CA"},
	{Name: "Tesla", Domain: "tesla.com", Industry: "Automotive", Size: "100,000+", Location: "Austin, TX"},
	{Name: "Nvidia", Domain: "nvidia.com", Industry: "Semiconductors", Size: "25,000+", Location: "Santa Clara, CA"},
	{Name: "Intel", Domain: "intel.com", Industry: "Semiconductors", Size: "100,000+", Location: "Santa Clara, CA"},
	{Name: "IBM", Domain: "ibm.com", Industry: "Technology", Size: "100,000+", Location: "Armonk, NY"},
	{Name: "Oracle", Domain: "oracle.com", Industry: "Enterprise Software", Size: "100,000+", Location: "Austin, TX"},
	{Name: "Salesforce", Domain: "salesforce.com", Industry: "Enterprise Software", Size: "50,000+", Location: "San Francisco, CA"},
	{Name: "Adobe", Domain: "adobe.com", Industry: "Software", Size: "25,000+", Location: "San Jose, CA"},
	{Name: "Uber", Domain: "uber.com", Industry: "Transportation", Size: "25,000+", Location: "San Francisco, CA"},
	{Name: "Lyft", Domain: "lyft.com", Industry: "Transportation", Size: "5,000+", Location: "San Francisco, CA"},
	{Name: "Airbnb", Domain: "airbnb.com", Industry: "Travel", Size: "5,000+", Location: "San Francisco, CA"},
	{Name: "Spotify", Domain: "spotify.com", Industry: "Music Streaming", Size: "5,000+", Location: "Stockholm, Sweden"},
	{Name: "Stripe", Domain: "stripe.com", Industry: "Fintech", Size: "5,000+", Location: "San Francisco, CA"},
	{Name: "Square", Domain: "squareup.com", Industry: "Fintech", Size: "5,000+", Location: "San Francisco, CA"},
	{Name: "PayPal", Domain: "paypal.com", Industry: "Fintech", Size: "25,000+", Location: "San Jose, CA"},
	{Name: "Coinbase", Domain: "coinbase.com", Industry: "Cryptocurrency", Size: "1,000+", Location: "Remote"},
	{Name: "Robinhood", Domain: "robinhood.com", Industry: "Fintech", Size: "1,000+", Location: "Menlo Park, CA"},
	{Name: "Plaid", Domain: "plaid.com", Industry: "Fintech", Size: "1,000+", Location: "San Francisco, CA"},
	{Name: "Shopify", Domain: "shopify.com", Industry: "E-commerce", Size: "10,000+", Location: "Ottawa, Canada"},
	{Name: "Zoom", Domain: "zoom.us", Industry: "Video Communications", Size: "5,000+", Location: "San Jose, CA"},
	{Name: "Slack", Domain: "slack.com", Industry: "Collaboration", Size: "2,500+", Location: "San Francisco, CA"},
	{Name: "Atlassian", Domain: "atlassian.com", Industry: "Collaboration", Size: "10,000+", Location: "Sydney, Australia"},
	{Name: "Dropbox", Domain: "dropbox.com", Industry: "Cloud Storage", Size: "2,500+", Location: "San Francisco, CA"},
	{Name: "Box", Domain: "box.com", Industry: "Cloud Storage", Size: "2,500+", Location: "Redwood City, CA"},
	{Name: "Twilio", Domain: "twilio.com", Industry: "Communications API", Size: "5,000+", Location: "San Francisco, CA"},
	{Name: "Datadog", Domain: "datadoghq.com", Industry: "Observability", Size: "5,000+", Location: "New York, NY"},
	{Name: "Snowflake", Domain: "snowflake.com", Industry: "Data Cloud", Size: "5,000+", Location: "Bozeman, MT"},
	{Name: "Databricks", Domain: "databricks.com", Industry: "Data & AI", Size: "5,000+", Location: "San Francisco, CA"},
	{Name: "MongoDB", Domain: "mongodb.com", Industry: "Databases", Size: "5,000+", Location: "New York, NY"},
	{Name: "Elastic", Domain: "elastic.co", Industry: "Search", Size: "2,500+", Location: "Distributed"},
	{Name: "HashiCorp", Domain: "hashicorp.com", Industry: "Infrastructure", Size: "2,500+", Location: "San Francisco, CA"},
	{Name: "GitLab", Domain: "gitlab.com", Industry: "DevOps", Size: "2,000+", Location: "Remote"},
	{Name: "GitHub", Domain: "github.com", Industry: "DevOps", Size: "2,500+", Location: "San Francisco, CA"},
	{Name: "DigitalOcean", Domain: "digitalocean.com", Industry: "Cloud", Size: "1,000+", Location: "New York, NY"},
	{Name: "Cloudflare", Domain: "cloudflare.com", Industry: "Internet Infrastructure", Size: "2,500+", Location: "San Francisco, CA"},
	{Name: "Fastly", Domain: "fastly.com", Industry: "Edge Cloud", Size: "1,000+", Location: "San Francisco, CA"},
	{Name: "OpenAI", Domain: "openai.com", Industry: "Artificial Intelligence", Size: "1,000+", Location: "San Francisco, CA"},
	{Name: "Anthropic", Domain: "anthropic.com", Industry: "Artificial Intelligence", Size: "500+", Location: "San Francisco, CA"},
	{Name: "Hugging Face", Domain: "huggingface.co", Industry: "Artificial Intelligence", Size: "250+", Location: "New York, NY"},
	{Name: "Scale AI", Domain: "scale.com", Industry: "Artificial Intelligence", Size: "500+", Location: "San Francisco, CA"},
	{Name: "Palantir", Domain: "palantir.com", Industry: "Data Analytics", Size: "2,500+", Location: "Denver, CO"},
	{Name: "Snap", Domain: "snap.com", Industry: "Social Media", Size: "5,000+", Location: "Santa Monica, CA"},
	{Name: "Pinterest", Domain: "pinterest.com", Industry: "Social Media", Size: "2,500+", Location: "San Francisco, CA"},
	{Name: "Reddit", Domain: "reddit.com", Industry: "Social Media", Size: "2,000+", Location: "San Francisco, CA"},
	{Name: "Discord", Domain: "discord.com", Industry: "Communications", Size: "1,000+", Location: "San Francisco, CA"},
	{Name: "Figma", Domain: "figma.com", Industry: "Design Tools", Size: "1,000+", Location: "San Francisco, CA"},
	{Name: "Canva", Domain: "canva.com", Industry: "Design Tools", Size: "2,500+", Location: "Sydney, Australia"},
	{Name: "Notion", Domain: "notion.so", Industry: "Productivity", Size: "500+", Location: "San Francisco, CA"},
	{Name: "Asana", Domain: "asana.com", Industry: "Productivity", Size: "1,000+", Location: "San Francisco, CA"},
	{Name: "Linear", Domain: "linear.app", Industry: "Productivity", Size: "100+", Location: "Remote"},
	{Name: "Vercel", Domain: "vercel.com", Industry: "Developer Platform", Size: "500+", Location: "San Francisco, CA"},
	{Name: "Netlify", Domain: "netlify.com", Industry: "Developer Platform", Size: "250+", Location: "San Francisco, CA"},
	{Name: "Supabase", Domain: "supabase.com", Industry: "Developer Platform", Size: "100+", Location: "Remote"},
	{Name: "Render", Domain: "render.com", Industry: "Cloud", Size: "100+", Location: "San Francisco, CA"},
	{Name: "Fly.io", Domain: "fly.io", Industry: "Cloud", Size: "100+", Location: "Chicago, IL"},
	{Name: "LinkedIn", Domain: "linkedin.com", Industry: "Professional Network", Size: "10,000+", Location: "Sunnyvale, CA"},
	{Name: "Workday", Domain: "workday.com", Industry: "Enterprise Software", Size: "10,000+", Location: "Pleasanton, CA"},
	{Name: "ServiceNow", Domain: "servicenow.com", Industry: "Enterprise Software", Size: "20,000+", Location: "Santa Clara, CA"},
	{Name: "Intuit", Domain: "intuit.com", Industry: "Financial Software", Size: "10,000+", Location: "Mountain View, CA"},
	{Name: "Cisco", Domain: "cisco.com", Industry: "Networking", Size: "75,000+", Location: "San Jose, CA"},
	{Name: "Qualcomm", Domain: "qualcomm.com", Industry: "Semiconductors", Size: "50,000+", Location: "San Diego, CA"},
	{Name: "AMD", Domain: "amd.com", Industry: "Semiconductors", Size: "25,000+", Location: "Santa Clara, CA"},
	{Name: "Booking.com", Domain: "booking.com", Industry: "Travel", Size: "10,000+", Location: "Amsterdam, Netherlands"},
	{Name: "DoorDash", Domain: "doordash.com", Industry: "Delivery", Size: "10,000+", Location: "San Francisco, CA"},
	{Name: "Instacart", Domain: "instacart.com", Industry: "Delivery", Size: "2,500+", Location: "San Francisco, CA"},
}
